package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTodoOperations = "todo_operations"
	LabelOperation     = "operation"

	OperationAdd    = "add"
	OperationToggle = "toggle"
	OperationDelete = "delete"
	OperationPurge  = "purge"
)

var TodoOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTodoOperations,
		Help:      "Todo list mutations",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)

const (
	NameDeletedTodosExpired = "deleted_todos_expired"
)

var DeletedTodosExpired = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameDeletedTodosExpired,
		Help:      "Deleted todo entries dropped from the recently deleted log",
		Namespace: Namespace,
	},
)
