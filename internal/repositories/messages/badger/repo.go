package badgermessagesrepo

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/zestagio/timeline/internal/logger"
)

const keyPrefix = "msg:"

//go:generate options-gen -out-filename=repo_options.gen.go -from-struct=Options
type Options struct {
	dir      string
	inMemory bool
}

// Repo keeps messages in an embedded Badger database as JSON values.
type Repo struct {
	db *badger.DB
}

func New(opts Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	if opts.dir == "" && !opts.inMemory {
		return nil, errors.New("validate options: dir is required for on-disk storage")
	}

	bOpts := badger.DefaultOptions(opts.dir).
		WithInMemory(opts.inMemory).
		WithLogger(logger.NewBadgerAdapted("badger"))
	if opts.inMemory {
		bOpts = bOpts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(bOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %v", err)
	}
	return &Repo{db: db}, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

func messageKey(id string) []byte {
	return []byte(keyPrefix + id)
}
