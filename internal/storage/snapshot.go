package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/state"
)

// LoadState reads every persisted key. A missing or undecodable key falls
// back to its empty default and list elements that fail to decode or
// validate are dropped one at a time; only store failures are returned. When
// no date was ever saved, today is used.
func LoadState(ctx context.Context, store Store, today string, logger *slog.Logger) (state.State, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := state.New(today)

	raw := make(map[state.Key][]byte, len(state.AllKeys))
	for _, key := range state.AllKeys {
		value, err := store.Load(ctx, string(key))
		if err != nil {
			return s, fmt.Errorf("load %s: %w", key, err)
		}
		raw[key] = value
	}

	var (
		user        *model.UserProfile
		theme       model.Theme
		currentDate string
	)
	decodeValue(raw[state.KeyUser], &user, logger, state.KeyUser)
	decodeValue(raw[state.KeyTheme], &theme, logger, state.KeyTheme)
	decodeValue(raw[state.KeyCurrentDate], &currentDate, logger, state.KeyCurrentDate)

	s.User = user
	s.Routines = decodeList(raw[state.KeyRoutines], logger, state.KeyRoutines, model.RoutineTemplate.Validate)
	s.StudyPlans = decodeList(raw[state.KeyStudyPlans], logger, state.KeyStudyPlans, model.StudyPlanTemplate.Validate)
	s.DailyTasks = decodeList(raw[state.KeyDailyTasks], logger, state.KeyDailyTasks, model.TaskInstance.Validate)
	s.Notes = decodeList(raw[state.KeyNotes], logger, state.KeyNotes, model.Note.Validate)
	s.NotifiedIDs = decodeList[string](raw[state.KeyNotifiedIDs], logger, state.KeyNotifiedIDs, nil)
	if theme == model.ThemeDark {
		s.Theme = model.ThemeDark
	}
	if model.ValidDate(currentDate) {
		s.CurrentDate = currentDate
	}
	return s, nil
}

func decodeValue(raw []byte, dst any, logger *slog.Logger, key state.Key) {
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("discarding malformed stored value", "key", string(key), "err", err)
	}
}

// decodeList decodes a stored array element by element so one bad entry
// does not take the rest of the list with it.
func decodeList[T any](raw []byte, logger *slog.Logger, key state.Key, validate func(T) error) []T {
	if raw == nil {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		logger.Warn("discarding malformed stored value", "key", string(key), "err", err)
		return nil
	}
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			logger.Warn("dropping undecodable stored item", "key", string(key), "index", i, "err", err)
			continue
		}
		if validate != nil {
			if err := validate(item); err != nil {
				logger.Warn("dropping invalid stored item", "key", string(key), "index", i, "err", err)
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// SaveKeys writes the named aggregates of s, each as a whole value.
func SaveKeys(ctx context.Context, store Store, s state.State, keys []state.Key) error {
	seen := make(map[state.Key]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true
		value, err := valueOf(s, key)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if err := store.Save(ctx, string(key), payload); err != nil {
			return err
		}
	}
	return nil
}

func valueOf(s state.State, key state.Key) (any, error) {
	switch key {
	case state.KeyUser:
		return s.User, nil
	case state.KeyRoutines:
		return nonNil(s.Routines), nil
	case state.KeyStudyPlans:
		return nonNil(s.StudyPlans), nil
	case state.KeyDailyTasks:
		return nonNil(s.DailyTasks), nil
	case state.KeyNotes:
		return nonNil(s.Notes), nil
	case state.KeyNotifiedIDs:
		return nonNil(s.NotifiedIDs), nil
	case state.KeyTheme:
		return s.Theme, nil
	case state.KeyCurrentDate:
		return s.CurrentDate, nil
	default:
		return nil, fmt.Errorf("storage: unknown key %q", key)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
