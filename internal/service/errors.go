package service

import "fmt"

var (
	ErrCannotListResults = fmt.Errorf("cannot list dq results")
)
