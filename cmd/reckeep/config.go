package main

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/reckeep/reckeep/reckeep"
	"github.com/reckeep/reckeep/reckeep/mirror"
)

// Configuration keys, overridable via RECKEEP_* environment variables
// or an optional reckeep.yaml in the working directory. Flags win over
// both.
func initConfig() {
	viper.SetConfigName("reckeep")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RECKEEP")
	viper.AutomaticEnv()

	viper.SetDefault("store", "records.json")
	viper.SetDefault("backup_dir", "backups")
	viper.SetDefault("export_file", "records-export.txt")
	viper.SetDefault("mirror_enabled", true)
	viper.SetDefault("mirror_url", "ws://localhost:8000/rpc")
	viper.SetDefault("mirror_ns", "reckeep")
	viper.SetDefault("mirror_db", "records")
	viper.SetDefault("mirror_user", "root")
	viper.SetDefault("mirror_pass", "root")
	viper.SetDefault("log_level", "warn")

	// The config file is optional; missing is fine.
	_ = viper.ReadInConfig()
}

// openStore builds a Store from the effective configuration. The mirror
// connection is attempted once; if the secondary store is unreachable
// the store runs in file-only mode.
func openStore() (*reckeep.Store, error) {
	logger := newLogger(viper.GetString("log_level"))

	path := storePath
	if path == "" {
		path = viper.GetString("store")
	}
	dir := filepath.Dir(path)

	opts := []reckeep.Option{
		reckeep.WithLogger(logger),
		reckeep.WithBackupDir(filepath.Join(dir, viper.GetString("backup_dir"))),
		reckeep.WithExportPath(filepath.Join(dir, viper.GetString("export_file"))),
	}

	if viper.GetBool("mirror_enabled") {
		m, err := mirror.Connect(mirror.Config{
			URL:       viper.GetString("mirror_url"),
			Namespace: viper.GetString("mirror_ns"),
			Database:  viper.GetString("mirror_db"),
			Username:  viper.GetString("mirror_user"),
			Password:  viper.GetString("mirror_pass"),
		})
		if err != nil {
			logger.Info("mirror unreachable, running file-only", "url", viper.GetString("mirror_url"), "error", err)
		} else {
			opts = append(opts, reckeep.WithMirror(m))
		}
	}

	return reckeep.New(path, opts...)
}
