package main

import "flag"

// Command-line flags controlling demo selection and optional runtime behavior.
var (
	// demoFlag selects which visualization to run.
	demoFlag = flag.String("demo", "interference", "visualization to run: interference, dipole, dipole-hd, waveguide")

	// tuningFlag points at an optional YAML file overriding the embedded
	// tuning defaults.
	tuningFlag = flag.String("tuning", "", "path to a tuning override file (YAML)")

	// debugFlag enables the FPS and frame-time overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	// openCLSamplerFlag requests GPU field sampling when built with -tags opencl.
	openCLSamplerFlag = flag.Bool("opencl-sampler", false, "sample point-source fields on the GPU (requires -tags opencl build)")

	// attractFlag wanders a virtual pointer and clicks periodically.
	attractFlag = flag.Bool("attract", false, "unattended demo mode: synthesize clicks along a noise path")

	// telemetryDirFlag enables CSV frame telemetry when non-empty.
	telemetryDirFlag = flag.String("telemetry-dir", "", "directory for frame telemetry CSV output (empty = disabled)")

	// recordProfileFlag captures a CPU profile for the whole run.
	recordProfileFlag = flag.String("record-profile", "", "write a CPU profile to the given path")
)
