package scores

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

const stateVersion = 1

// state is the persisted document: the whole store in one blob.
type state struct {
	Version int                      `msgpack:"version"`
	Scores  map[string]map[int]Entry `msgpack:"scores"`
}

func encodeState(users userDays) ([]byte, error) {
	return msgpack.Marshal(&state{
		Version: stateVersion,
		Scores:  users,
	})
}

func decodeState(data []byte) (userDays, error) {
	var st state
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %w", err)
	}
	if st.Version != stateVersion {
		return nil, fmt.Errorf("unsupported scores version %d", st.Version)
	}
	users := make(userDays, len(st.Scores))
	for user, days := range st.Scores {
		if user == "" {
			return nil, fmt.Errorf("%w in saved scores", ErrInvalidUser)
		}
		clean := make(map[int]Entry, len(days))
		for day, e := range days {
			if day <= 0 {
				return nil, fmt.Errorf("%w: user %s has day %d", ErrInvalidDay, user, day)
			}
			clean[day] = e
		}
		users[user] = clean
	}
	return users, nil
}
