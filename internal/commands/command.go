package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Type string

const (
	TypeTaskAdd       Type = "task add"
	TypeTaskEdit      Type = "task edit"
	TypeTaskDone      Type = "task done"
	TypeTaskRemove    Type = "task rm"
	TypeRoutineAdd    Type = "routine add"
	TypeRoutineEdit   Type = "routine edit"
	TypeRoutineRemove Type = "routine rm"
	TypeStudyAdd      Type = "study add"
	TypeStudyEdit     Type = "study edit"
	TypeStudyRemove   Type = "study rm"
	TypeNoteAdd       Type = "note add"
	TypeNoteRemove    Type = "note rm"
	TypeTheme         Type = "theme"
	TypeNotify        Type = "notify"
	TypeProfile       Type = "profile"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type TaskAddArgs struct {
	Start model.ClockTime
	End   model.ClockTime
	Title string
}

// TaskEditArgs leaves the title unchanged when Title is empty.
type TaskEditArgs struct {
	ID    string
	Start model.ClockTime
	End   model.ClockTime
	Title string
}

type IDArgs struct {
	IDs []string
}

type RoutineAddArgs struct {
	Start model.ClockTime
	End   model.ClockTime
	Title string
}

// RoutineEditArgs leaves the title unchanged when Title is empty.
type RoutineEditArgs struct {
	ID    string
	Start model.ClockTime
	End   model.ClockTime
	Title string
}

type StudyAddArgs struct {
	Start     model.ClockTime
	Duration  int
	Frequency model.Frequency
	Days      []int
	Subject   string
}

type StudyEditArgs struct {
	ID       string
	Start    model.ClockTime
	Duration int
}

type NoteAddArgs struct {
	Title string
}

type NotifyArgs struct {
	Enabled bool
}

type ProfileField string

const (
	ProfileName   ProfileField = "name"
	ProfileTarget ProfileField = "target"
	ProfileClock  ProfileField = "clock"
	ProfileLevel  ProfileField = "level"
	ProfileGoals  ProfileField = "goals"
)

type ProfileArgs struct {
	Field       ProfileField
	Name        string
	TargetHours float64
	TimeFormat  model.TimeFormat
	StudyLevel  model.StudyLevel
	Goals       string
}

type Command struct {
	Type        Type
	Raw         string
	TaskAdd     *TaskAddArgs
	TaskEdit    *TaskEditArgs
	IDs         *IDArgs
	RoutineAdd  *RoutineAddArgs
	RoutineEdit *RoutineEditArgs
	StudyAdd    *StudyAddArgs
	StudyEdit   *StudyEditArgs
	NoteAdd     *NoteAddArgs
	Notify      *NotifyArgs
	Profile     *ProfileArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch head {
	case "theme":
		return Command{Type: TypeTheme, Raw: input}, nil
	case "notify":
		return parseNotify(input, args)
	case "profile":
		return parseProfile(input, args)
	case "task", "routine", "study", "note":
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}

	if len(args) == 0 {
		return Command{}, invalid("%s requires a subcommand", head)
	}
	verb := strings.ToLower(args[0])
	if verb == "remove" || verb == "delete" {
		verb = "rm"
	}
	args = args[1:]

	switch Type(head + " " + verb) {
	case TypeTaskAdd:
		return parseTaskAdd(input, args)
	case TypeTaskEdit:
		return parseTaskEdit(input, args)
	case TypeTaskDone:
		return parseIDs(input, TypeTaskDone, args, 1)
	case TypeTaskRemove:
		return parseIDs(input, TypeTaskRemove, args, -1)
	case TypeRoutineAdd:
		return parseRoutineAdd(input, args)
	case TypeRoutineEdit:
		return parseRoutineEdit(input, args)
	case TypeRoutineRemove:
		return parseIDs(input, TypeRoutineRemove, args, 1)
	case TypeStudyAdd:
		return parseStudyAdd(input, args)
	case TypeStudyEdit:
		return parseStudyEdit(input, args)
	case TypeStudyRemove:
		return parseIDs(input, TypeStudyRemove, args, 1)
	case TypeNoteAdd:
		return parseNoteAdd(input, args)
	case TypeNoteRemove:
		return parseIDs(input, TypeNoteRemove, args, 1)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s %s", head, verb)}
	}
}

func parseClock(what, raw string) (model.ClockTime, error) {
	c, err := model.ParseClock(raw)
	if err != nil {
		return 0, invalid("%s must be HH:mm, got %q", what, raw)
	}
	return c, nil
}

func parseSpan(args []string) (model.ClockTime, model.ClockTime, error) {
	start, err := parseClock("start", args[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseClock("end", args[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTaskAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, invalid("task add requires start, end and title")
	}
	start, end, err := parseSpan(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeTaskAdd, Raw: raw, TaskAdd: &TaskAddArgs{Start: start, End: end, Title: strings.Join(args[2:], " ")}}, nil
}

func parseTaskEdit(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, invalid("task edit requires id, start and end")
	}
	start, end, err := parseSpan(args[1:])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeTaskEdit, Raw: raw, TaskEdit: &TaskEditArgs{ID: args[0], Start: start, End: end, Title: strings.Join(args[3:], " ")}}, nil
}

func parseRoutineEdit(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, invalid("routine edit requires id, start and end")
	}
	start, end, err := parseSpan(args[1:])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRoutineEdit, Raw: raw, RoutineEdit: &RoutineEditArgs{ID: args[0], Start: start, End: end, Title: strings.Join(args[3:], " ")}}, nil
}

// parseIDs accepts exactly n ids, or at least one when n is negative.
func parseIDs(raw string, typ Type, args []string, n int) (Command, error) {
	if len(args) == 0 || (n > 0 && len(args) != n) {
		if n == 1 {
			return Command{}, invalid("%s requires an id", typ)
		}
		return Command{}, invalid("%s requires at least one id", typ)
	}
	return Command{Type: typ, Raw: raw, IDs: &IDArgs{IDs: append([]string(nil), args...)}}, nil
}

func parseRoutineAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, invalid("routine add requires start, end and title")
	}
	start, end, err := parseSpan(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRoutineAdd, Raw: raw, RoutineAdd: &RoutineAddArgs{Start: start, End: end, Title: strings.Join(args[2:], " ")}}, nil
}

func parseDuration(raw string) (int, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, invalid("duration must be a positive number of minutes, got %q", raw)
	}
	return minutes, nil
}

func parseStudyAdd(raw string, args []string) (Command, error) {
	if len(args) < 4 {
		return Command{}, invalid("study add requires start, minutes, frequency and subject")
	}
	start, err := parseClock("start", args[0])
	if err != nil {
		return Command{}, err
	}
	minutes, err := parseDuration(args[1])
	if err != nil {
		return Command{}, err
	}
	out := StudyAddArgs{Start: start, Duration: minutes, Frequency: model.Frequency(strings.ToLower(args[2]))}
	rest := args[3:]
	switch out.Frequency {
	case model.FrequencyDaily:
	case model.FrequencyWeekly:
		if len(rest) < 2 {
			return Command{}, invalid("weekly study plans require days and a subject")
		}
		days, err := model.ParseWeekdays(rest[0])
		if err != nil || len(days) == 0 {
			return Command{}, invalid("invalid days %q", rest[0])
		}
		out.Days, rest = days, rest[1:]
	default:
		return Command{}, invalid("frequency must be daily or weekly, got %q", args[2])
	}
	out.Subject = strings.Join(rest, " ")
	return Command{Type: TypeStudyAdd, Raw: raw, StudyAdd: &out}, nil
}

func parseStudyEdit(raw string, args []string) (Command, error) {
	if len(args) != 3 {
		return Command{}, invalid("study edit requires id, start and minutes")
	}
	start, err := parseClock("start", args[1])
	if err != nil {
		return Command{}, err
	}
	minutes, err := parseDuration(args[2])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeStudyEdit, Raw: raw, StudyEdit: &StudyEditArgs{ID: args[0], Start: start, Duration: minutes}}, nil
}

func parseNoteAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, invalid("note add requires a title")
	}
	return Command{Type: TypeNoteAdd, Raw: raw, NoteAdd: &NoteAddArgs{Title: title}}, nil
}

func parseNotify(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("notify requires on or off")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return Command{Type: TypeNotify, Raw: raw, Notify: &NotifyArgs{Enabled: true}}, nil
	case "off":
		return Command{Type: TypeNotify, Raw: raw, Notify: &NotifyArgs{Enabled: false}}, nil
	default:
		return Command{}, invalid("notify requires on or off, got %q", args[0])
	}
}

func parseProfile(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalid("profile requires a field and a value")
	}
	out := ProfileArgs{Field: ProfileField(strings.ToLower(args[0]))}
	switch out.Field {
	case ProfileName:
		out.Name = strings.Join(args[1:], " ")
	case ProfileTarget:
		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil || hours < 0 || hours > 24 || len(args) != 2 {
			return Command{}, invalid("target must be hours between 0 and 24, got %q", strings.Join(args[1:], " "))
		}
		out.TargetHours = hours
	case ProfileClock:
		out.TimeFormat = model.TimeFormat(strings.ToLower(args[1]))
		if (out.TimeFormat != model.TimeFormat12h && out.TimeFormat != model.TimeFormat24h) || len(args) != 2 {
			return Command{}, invalid("clock must be 12h or 24h, got %q", strings.Join(args[1:], " "))
		}
	case ProfileLevel:
		level, err := model.ParseStudyLevel(args[1])
		if err != nil || len(args) != 2 {
			return Command{}, invalid("level must be School, College or University, got %q", strings.Join(args[1:], " "))
		}
		out.StudyLevel = level
	case ProfileGoals:
		out.Goals = strings.Join(args[1:], " ")
	default:
		return Command{}, invalid("unknown profile field %q", args[0])
	}
	return Command{Type: TypeProfile, Raw: raw, Profile: &out}, nil
}
