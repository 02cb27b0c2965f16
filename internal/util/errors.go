package util

import "errors"

var (
	ErrNoInputFiles = errors.New("no rq<N>.txt files found")
	ErrNoRecords    = errors.New("no parseable records after filtering")
	ErrNoYears      = errors.New("no records with an extractable year")
	ErrNoWorkdir    = errors.New("cannot determine working directory")
)
