//go:build linux

package stationstats

import (
	"log"

	"golang.org/x/sys/unix"
)

// advise tells the kernel the mapping will be read sequentially and in
// full. The hints are advisory: kernels without transparent huge pages
// reject MADV_HUGEPAGE, so failures are logged and ignored rather than
// failing the run.
func advise(data []byte) {
	for _, adv := range []int{unix.MADV_SEQUENTIAL, unix.MADV_WILLNEED, unix.MADV_HUGEPAGE} {
		if err := unix.Madvise(data, adv); err != nil {
			log.Printf("madvise %d: %v", adv, err)
		}
	}
}
