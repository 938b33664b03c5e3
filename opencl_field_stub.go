//go:build !opencl

package main

import "errors"

func newOpenCLFieldSampler(_ int) (fieldSampler, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
