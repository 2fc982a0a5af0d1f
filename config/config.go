package config

import (
	"time"

	"github.com/ngaut/log"
)

type Config struct {
	StoreAddr     string `toml:"store-addr"`     // Address the tablet grpc service listens on.
	StatusAddr    string `toml:"status-addr"`    // Address of the HTTP status/metrics endpoint.
	AuthorityAddr string `toml:"authority-addr"` // Address of the transaction status authority service.
	TabletID      string `toml:"tablet-id"`      // Identifier of the tablet owning this participant.
	LogLevel      string `toml:"log-level"`
	MaxProcs      int    `toml:"max-procs"` // Max CPU cores to use, set 0 to use all CPU cores in the machine.
	Engine        Engine `toml:"engine"`    // Engine options.
	Txn           Txn    `toml:"txn"`       // Transaction participant options.
}

type Engine struct {
	DBPath           string `toml:"db-path"`             // Directory to store the data in. Should exist and be writable.
	ValueThreshold   int    `toml:"value-threshold"`     // If value size >= this threshold, only store value offsets in tree.
	MaxTableSize     int64  `toml:"max-table-size"`      // Each table is at most this size.
	NumMemTables     int    `toml:"num-mem-tables"`      // Maximum number of tables to keep in memory, before stalling.
	NumL0Tables      int    `toml:"num-L0-tables"`       // Maximum number of Level 0 tables before we start compacting.
	NumL0TablesStall int    `toml:"num-L0-tables-stall"` // Maximum number of Level 0 tables before stalling.
	VlogFileSize     int64  `toml:"vlog-file-size"`      // Value log file size.

	// 	Sync all writes to disk. Setting this to true would slow down data loading significantly.
	SyncWrite     bool `toml:"sync-write"`
	NumCompactors int  `toml:"num-compactors"`
}

type Txn struct {
	RPCTimeout      string `toml:"rpc-timeout"`      // Deadline for status/abort/apply-notify calls to the authority.
	RecordTTL       string `toml:"record-ttl"`       // Idle time after local apply before an entry may be dropped.
	CleanupInterval string `toml:"cleanup-interval"` // How often the cleaner sweeps applied transactions.
}

const MB = 1024 * 1024

var DefaultConf = Config{
	StoreAddr:     "127.0.0.1:9191",
	StatusAddr:    "127.0.0.1:9291",
	AuthorityAddr: "127.0.0.1:9391",
	TabletID:      "tablet-1",
	LogLevel:      "info",
	MaxProcs:      0,
	Engine: Engine{
		DBPath:           "/tmp/badger",
		ValueThreshold:   256,
		MaxTableSize:     64 * MB,
		NumMemTables:     3,
		NumL0Tables:      4,
		NumL0TablesStall: 8,
		VlogFileSize:     256 * MB,
		SyncWrite:        true,
		NumCompactors:    1,
	},
	Txn: Txn{
		RPCTimeout:      "5s",
		RecordTTL:       "10m",
		CleanupInterval: "1m",
	},
}

func ParseDuration(durationStr string) time.Duration {
	dur, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Fatalf("invalid duration %q: %v", durationStr, err)
	}
	return dur
}
