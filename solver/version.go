package solver

// version is the library release string; see Version.
const version = "0.1.0"

// Version returns the lvlcsp release string.
func Version() string { return version }

// GPUAvailable reports whether an accelerated backend is compiled in.
// The portable core always answers false.
func GPUAvailable() bool { return false }

// GPUDeviceCount returns the number of usable accelerator devices.
// The portable core always answers 0.
func GPUDeviceCount() int { return 0 }
