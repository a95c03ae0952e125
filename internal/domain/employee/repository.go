package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// List retrieves every employee. The reconciliation job evaluates the
	// full roster on each run, so there is no pagination here.
	List(ctx context.Context) ([]Employee, error)
}
