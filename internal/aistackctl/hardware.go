package aistackctl

import "fmt"

// HardwareProfile selects which optional accelerator variant of the stack is
// activated. Exactly one profile is active per deployment; the value maps
// directly onto a compose profile name.
type HardwareProfile string

const (
	HardwareCPU       HardwareProfile = "cpu"
	HardwareGPUNvidia HardwareProfile = "gpu-nvidia"
	HardwareGPUAMD    HardwareProfile = "gpu-amd"
)

func HardwareProfiles() []HardwareProfile {
	return []HardwareProfile{HardwareCPU, HardwareGPUNvidia, HardwareGPUAMD}
}

func ParseHardwareProfile(s string) (HardwareProfile, error) {
	for _, p := range HardwareProfiles() {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown hardware profile: %q (expected cpu, gpu-nvidia, or gpu-amd)", s)
}
