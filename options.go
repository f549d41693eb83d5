package kernelpca

// Option configures a KernelPca instance.
type Option func(*KernelPca)

// WithWorkers sets the number of goroutines used to build the Gram matrix.
// Values below 2 keep the build single-threaded, which is the default.
// The embedding is identical for any worker count; only wall-clock time
// changes. The option has no effect on the linear-kernel path, which never
// builds a Gram matrix.
func WithWorkers(n int) Option {
	return func(p *KernelPca) {
		if n < 1 {
			n = 1
		}
		p.workers = n
	}
}
