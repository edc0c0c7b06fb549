//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary compiles the clock into bin/.
func (Build) Binary() error {
	return sh.RunV("go", "build", "-o", "bin/analogue-clock", "./cmd/analogue-clock")
}

type Run mg.Namespace

// Lines runs the 2D line-drawn variant.
func (Run) Lines() error {
	return sh.RunV("go", "run", "./cmd/analogue-clock", "lines")
}

// Mesh runs the 2D triangulated variant.
func (Run) Mesh() error {
	return sh.RunV("go", "run", "./cmd/analogue-clock", "mesh")
}

// Solid runs the 3D lit variant.
func (Run) Solid() error {
	return sh.RunV("go", "run", "./cmd/analogue-clock", "solid")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}
