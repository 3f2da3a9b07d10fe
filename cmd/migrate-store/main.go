// Command migrate-store copies the stored transaction collection from one
// storage backend to another, for example from a JSON file directory into
// the SQLite database.
//
// The destination is configured like the server (environment and .env);
// the source is given with flags.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/tropicaldog17/cryptofolio/internal/config"
	"github.com/tropicaldog17/cryptofolio/internal/logger"
	"github.com/tropicaldog17/cryptofolio/internal/repositories"
	"github.com/tropicaldog17/cryptofolio/internal/storage"
)

func main() {
	dst := config.Load()

	src := *dst
	flag.StringVar(&src.StoreBackend, "from", config.BackendFile, "source backend: sqlite, postgres or file")
	flag.StringVar(&src.StoreDir, "from-dir", dst.StoreDir, "source directory for the file backend")
	flag.StringVar(&src.SQLitePath, "from-sqlite", dst.SQLitePath, "source database for the sqlite backend")
	flag.StringVar(&src.StorageKey, "from-key", dst.StorageKey, "source record key")
	merge := flag.Bool("merge", false, "keep destination transactions and add only unknown IDs")
	flag.Parse()

	if err := src.Validate(); err != nil {
		log.Fatal("Invalid source configuration: ", err)
	}
	if err := dst.Validate(); err != nil {
		log.Fatal("Invalid destination configuration: ", err)
	}
	if src.StoreBackend == config.BackendMemory || dst.StoreBackend == config.BackendMemory {
		log.Fatal("The memory backend is not persistent and cannot be migrated")
	}

	zlog, err := logger.New(dst.Env, dst.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer zlog.Sync()

	srcKV, closeSrc, err := storage.Open(&src)
	if err != nil {
		zlog.Fatal("failed to open source", zap.String("backend", src.StoreBackend), zap.Error(err))
	}
	defer closeSrc()

	dstKV, closeDst, err := storage.Open(dst)
	if err != nil {
		zlog.Fatal("failed to open destination", zap.String("backend", dst.StoreBackend), zap.Error(err))
	}
	defer closeDst()

	mode := repositories.CopyReplace
	if *merge {
		mode = repositories.CopyMerge
	}

	ctx := context.Background()
	n, err := repositories.Copy(ctx,
		repositories.NewTransactionStore(srcKV, src.StorageKey, zlog),
		repositories.NewTransactionStore(dstKV, dst.StorageKey, zlog),
		mode)
	if err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	zlog.Info("migration completed",
		zap.String("from", src.StoreBackend),
		zap.String("to", dst.StoreBackend),
		zap.Int("transactions", n))
}
