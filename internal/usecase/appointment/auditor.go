package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/audit"

// Auditor é o que os use cases precisam do dispatcher de auditoria.
// Satisfeito por *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}
