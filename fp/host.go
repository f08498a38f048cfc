// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fp

import "runtime"

// HostInfo describes the floating-point capabilities of the running CPU.
//
// A fused multiply-add rounds once instead of twice, so kernels compiled
// for an FMA-capable target can differ from other machines in the last bit.
// The report is informational: no kernel dispatches on it.
type HostInfo struct {
	// Arch is runtime.GOARCH.
	Arch string

	// FMA reports hardware fused multiply-add.
	FMA bool

	// HalfConversions reports hardware float16 <-> float32 conversion.
	HalfConversions bool
}

// hostFMA and hostHalf are set by init() in host_*.go files.
var (
	hostFMA  bool
	hostHalf bool
)

// Host returns the capabilities detected at start-up.
func Host() HostInfo {
	return HostInfo{
		Arch:            runtime.GOARCH,
		FMA:             hostFMA,
		HalfConversions: hostHalf,
	}
}
