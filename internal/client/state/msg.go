package state

import "github.com/dmitrijs2005/gophtasks/internal/client/models"

// Msg is anything Reduce understands.
type Msg interface{ isMsg() }

type (
	AuthPending    struct{}
	AuthFailed     struct{ Err string }
	LoginSucceeded struct{ Token string }
	// Registration does not sign the user in.
	RegisterSucceeded struct{ Message string }
	LoggedOut         struct{}

	TasksPending  struct{}
	TasksFailed   struct{ Err string }
	TasksLoaded   struct{ Tasks []models.Task }
	PageLoaded    struct{ Page models.TaskPage }
	SearchLoaded  struct{ Tasks []models.Task }
	SearchCleared struct{}
	TaskCreated   struct{ Task models.Task }
	TaskUpdated   struct{ Task models.Task }
	TaskDeleted   struct{ ID string }
	// TasksExported leaves the lists alone; it only ends the pending request.
	TasksExported struct{ Export models.Export }
)

func (AuthPending) isMsg()       {}
func (AuthFailed) isMsg()        {}
func (LoginSucceeded) isMsg()    {}
func (RegisterSucceeded) isMsg() {}
func (LoggedOut) isMsg()         {}
func (TasksPending) isMsg()      {}
func (TasksFailed) isMsg()       {}
func (TasksLoaded) isMsg()       {}
func (PageLoaded) isMsg()        {}
func (SearchLoaded) isMsg()      {}
func (SearchCleared) isMsg()     {}
func (TaskCreated) isMsg()       {}
func (TaskUpdated) isMsg()       {}
func (TaskDeleted) isMsg()       {}
func (TasksExported) isMsg()     {}
