package game

import "errors"

var (
	ErrStructureNotFound = errors.New("structure not found")
	ErrStructureExists   = errors.New("structure already exists")
)
