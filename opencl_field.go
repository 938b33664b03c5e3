//go:build opencl

package main

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// GPU point-source sampler: evaluates the superposed field for the whole
// sample grid in one kernel launch. With at most 8 sources the per-frame
// upload is a few hundred bytes; the win is the per-pixel trig.

const sourceStride = 8 // floats per source record uploaded to the device

const fieldKernelSource = `__kernel void sample_field(
    const int gw,
    const int gh,
    const int step,
    const float t,
    const int nsources,
    const float k,
    const float max_range,
    const float falloff_exp,
    const float pattern_floor,
    __global const float* sources,
    __global float* out)
{
    int idx = get_global_id(0);
    if (idx >= gw * gh) {
        return;
    }
    int gx = idx % gw;
    int gy = idx / gw;
    float x = (float)(gx * step);
    float y = (float)(gy * step);
    float sum = 0.0f;
    for (int i = 0; i < nsources; i++) {
        __global const float* s = sources + i * 8;
        float dx = x - s[1];
        float dy = y - s[2];
        float d = sqrt(dx * dx + dy * dy);
        if (s[0] < 0.5f) {
            float atten = 1.0f - d / max_range;
            if (atten > 0.0f) {
                sum += s[4] * atten * sin(k * d - s[3] * t + s[5]);
            }
        } else if (d >= 1.0f) {
            float theta = atan2(dy, dx) - s[6];
            float pat = pattern_floor + (1.0f - pattern_floor) * fabs(sin(theta));
            sum += s[4] / pow(d, falloff_exp) * pat * sin(k * d - s[3] * t);
        }
    }
    out[idx] = sum;
}`

type openCLFieldSampler struct {
	context *cl.Context
	queue   *cl.CommandQueue
	program *cl.Program
	kernel  *cl.Kernel

	sourceBuf *cl.MemObject
	outBuf    *cl.MemObject
	outCap    int

	deviceName string

	sourceScratch []float32
	outScratch    []float32
}

func newOpenCLFieldSampler(maxSources int) (fieldSampler, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return nil, fmt.Errorf("querying OpenCL platforms: %w", err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{fieldKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("sample_field")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	sourceBytes := maxSources * sourceStride * int(unsafe.Sizeof(float32(0)))
	sourceBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, sourceBytes)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating source buffer: %w", err)
	}

	return &openCLFieldSampler{
		context:       context,
		queue:         queue,
		program:       program,
		kernel:        kernel,
		sourceBuf:     sourceBuf,
		deviceName:    device.Name(),
		sourceScratch: make([]float32, maxSources*sourceStride),
	}, nil
}

// ensureOutBuffer reallocates the device output buffer when the sample grid
// grows, e.g. after a window resize.
func (s *openCLFieldSampler) ensureOutBuffer(n int) error {
	if n <= s.outCap && s.outBuf != nil {
		return nil
	}
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	buf, err := s.context.CreateEmptyBuffer(cl.MemWriteOnly, n*int(unsafe.Sizeof(float32(0))))
	if err != nil {
		return fmt.Errorf("allocating output buffer: %w", err)
	}
	s.outBuf = buf
	s.outCap = n
	return nil
}

func (s *openCLFieldSampler) packSources(sources []Source) []float32 {
	need := len(sources) * sourceStride
	if cap(s.sourceScratch) < need {
		s.sourceScratch = make([]float32, need)
	}
	buf := s.sourceScratch[:need]
	for i, src := range sources {
		base := i * sourceStride
		buf[base] = float32(src.Kind)
		buf[base+1] = float32(src.X)
		buf[base+2] = float32(src.Y)
		buf[base+3] = float32(src.Freq)
		buf[base+4] = float32(src.Amp)
		buf[base+5] = float32(src.Phase)
		buf[base+6] = float32(src.Axis)
		buf[base+7] = 0
	}
	return buf
}

func (s *openCLFieldSampler) Sample(vals []float64, gw, gh, step int, sources []Source, t float64, p fieldParams) error {
	n := gw * gh
	if len(vals) != n {
		return fmt.Errorf("sample grid size mismatch: %d vs %d", len(vals), n)
	}
	if err := s.ensureOutBuffer(n); err != nil {
		return err
	}
	if len(sources) > 0 {
		packed := s.packSources(sources)
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.sourceBuf, false, 0, packed, nil); err != nil {
			return fmt.Errorf("writing source buffer: %w", err)
		}
	}
	if err := s.kernel.SetArgs(
		int32(gw),
		int32(gh),
		int32(step),
		float32(t),
		int32(len(sources)),
		float32(p.waveNumber),
		float32(p.maxRange),
		float32(p.falloffExp),
		float32(p.patternFloor),
		s.sourceBuf,
		s.outBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if cap(s.outScratch) < n {
		s.outScratch = make([]float32, n)
	}
	out := s.outScratch[:n]
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, out, nil); err != nil {
		return fmt.Errorf("reading output buffer: %w", err)
	}
	for i, v := range out {
		vals[i] = float64(v)
	}
	return nil
}

func (s *openCLFieldSampler) DeviceName() string { return s.deviceName }

func (s *openCLFieldSampler) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
	}
	if s.sourceBuf != nil {
		s.sourceBuf.Release()
	}
	if s.kernel != nil {
		s.kernel.Release()
	}
	if s.program != nil {
		s.program.Release()
	}
	if s.queue != nil {
		s.queue.Release()
	}
	if s.context != nil {
		s.context.Release()
	}
}
