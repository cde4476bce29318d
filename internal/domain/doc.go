// Package domain defines the core business entities and errors
// for the task management application.
package domain
