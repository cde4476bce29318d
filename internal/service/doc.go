// Package service contains the business logic of the application.
//
// TaskService is the only component with business rules: it validates
// inputs, enforces the due-date and assignee rules, performs partial-update
// merges and projects stored tasks into views carrying the denormalized
// assignee name. It depends on the store interfaces and knows nothing
// about HTTP.
package service
