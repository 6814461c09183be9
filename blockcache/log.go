package blockcache

import "github.com/ArweaveTeam/blockcache/logger"

var log = logger.RegisterSubSystem("BCACHE")
