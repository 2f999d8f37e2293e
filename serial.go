// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import "code.hybscloud.com/atomix"

// Serial tags a Scheduler or a Chan. Every Start and every NewChan draws a
// fresh one, so trace events and log records of concurrent runs in one
// process never share a tag.
type Serial = uint32

// serials is drawn from by both schedulers and channels.
var serials atomix.Uint32

func nextSerial() Serial {
	return serials.Add(1)
}
