package transaction

import (
	"github.com/inkline/studio/pkg/dbmetrics"
)

// DBExecutor интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
