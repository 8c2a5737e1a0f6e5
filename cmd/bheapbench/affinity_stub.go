// affinity_stub.go - no-op CPU pinning on non-Linux platforms.

//go:build !linux

package main

func pinToCPU(cpu int) {}
