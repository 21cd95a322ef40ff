package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	TaskAdd       func(TaskAddArgs) (Result, error)
	TaskEdit      func(TaskEditArgs) (Result, error)
	TaskDone      func(IDArgs) (Result, error)
	TaskRemove    func(IDArgs) (Result, error)
	RoutineAdd    func(RoutineAddArgs) (Result, error)
	RoutineEdit   func(RoutineEditArgs) (Result, error)
	RoutineRemove func(IDArgs) (Result, error)
	StudyAdd      func(StudyAddArgs) (Result, error)
	StudyEdit     func(StudyEditArgs) (Result, error)
	StudyRemove   func(IDArgs) (Result, error)
	NoteAdd       func(NoteAddArgs) (Result, error)
	NoteRemove    func(IDArgs) (Result, error)
	Theme         func() (Result, error)
	Notify        func(NotifyArgs) (Result, error)
	Profile       func(ProfileArgs) (Result, error)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func dispatch[A any](t Type, h func(A) (Result, error), args *A) (Result, error) {
	if h == nil {
		return Result{}, missing(t)
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is missing its arguments", t)}
	}
	return h(*args)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTaskAdd:
		return dispatch(cmd.Type, handlers.TaskAdd, cmd.TaskAdd)
	case TypeTaskEdit:
		return dispatch(cmd.Type, handlers.TaskEdit, cmd.TaskEdit)
	case TypeTaskDone:
		return dispatch(cmd.Type, handlers.TaskDone, cmd.IDs)
	case TypeTaskRemove:
		return dispatch(cmd.Type, handlers.TaskRemove, cmd.IDs)
	case TypeRoutineAdd:
		return dispatch(cmd.Type, handlers.RoutineAdd, cmd.RoutineAdd)
	case TypeRoutineEdit:
		return dispatch(cmd.Type, handlers.RoutineEdit, cmd.RoutineEdit)
	case TypeRoutineRemove:
		return dispatch(cmd.Type, handlers.RoutineRemove, cmd.IDs)
	case TypeStudyAdd:
		return dispatch(cmd.Type, handlers.StudyAdd, cmd.StudyAdd)
	case TypeStudyEdit:
		return dispatch(cmd.Type, handlers.StudyEdit, cmd.StudyEdit)
	case TypeStudyRemove:
		return dispatch(cmd.Type, handlers.StudyRemove, cmd.IDs)
	case TypeNoteAdd:
		return dispatch(cmd.Type, handlers.NoteAdd, cmd.NoteAdd)
	case TypeNoteRemove:
		return dispatch(cmd.Type, handlers.NoteRemove, cmd.IDs)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme()
	case TypeNotify:
		return dispatch(cmd.Type, handlers.Notify, cmd.Notify)
	case TypeProfile:
		return dispatch(cmd.Type, handlers.Profile, cmd.Profile)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
