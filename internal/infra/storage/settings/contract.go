package settings

import "github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/dbmetrics"

// DBExecutor is satisfied by *sql.DB and *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
