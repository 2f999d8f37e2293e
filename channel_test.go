// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine_test

import (
	"sort"
	"sync"
	"testing"

	"code.hybscloud.com/iox"
	"github.com/brunoczim/corustine"
)

func TestChanFIFO(t *testing.T) {
	ch := corustine.NewChan[string]()
	for _, v := range []string{"a", "b", "c"} {
		ch.Send(v)
	}
	for _, want := range []string{"a", "b", "c"} {
		got, ok := ch.Recv()
		if !ok || got != want {
			t.Fatalf("Recv got %q/%v, want %q", got, ok, want)
		}
	}
	if _, ok := ch.Recv(); ok {
		t.Fatal("expected empty channel")
	}
}

func TestChanTryRecvWouldBlock(t *testing.T) {
	ch := corustine.NewChan[int]()
	_, err := ch.TryRecv()
	if !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}

	ch.Send(7)
	v, err := ch.TryRecv()
	if err != nil || v != 7 {
		t.Fatalf("TryRecv got %d/%v, want 7", v, err)
	}
}

func TestChanAcrossSegments(t *testing.T) {
	// Enough elements to span several rings, interleaved with receives.
	ch := corustine.NewChan[int]()
	const n = 1000
	next := 0
	for i := range n {
		ch.Send(i)
		if i%3 == 0 {
			v, ok := ch.Recv()
			if !ok || v != next {
				t.Fatalf("Recv got %d/%v, want %d", v, ok, next)
			}
			next++
		}
	}
	if ch.Len() != n-next {
		t.Fatalf("Len got %d, want %d", ch.Len(), n-next)
	}
	for ; next < n; next++ {
		v, ok := ch.Recv()
		if !ok || v != next {
			t.Fatalf("Recv got %d/%v, want %d", v, ok, next)
		}
	}
	if ch.Len() != 0 {
		t.Fatalf("Len got %d, want 0", ch.Len())
	}
	if _, ok := ch.Recv(); ok {
		t.Fatal("expected empty channel")
	}

	// Reuse after draining.
	ch.Send(-1)
	if v, ok := ch.Recv(); !ok || v != -1 {
		t.Fatalf("Recv after drain got %d/%v", v, ok)
	}
}

func TestChanSharedHandle(t *testing.T) {
	tx := corustine.NewChan[int]()
	rx := tx
	var s corustine.Sender[int] = tx
	var r corustine.Receiver[int] = rx

	s.Send(1)
	tx.Send(2)
	if v, ok := r.Recv(); !ok || v != 1 {
		t.Fatalf("got %d/%v, want 1", v, ok)
	}
	if v, ok := rx.Recv(); !ok || v != 2 {
		t.Fatalf("got %d/%v, want 2", v, ok)
	}
	if tx.Serial() != rx.Serial() {
		t.Fatalf("handle serials differ: %d != %d", tx.Serial(), rx.Serial())
	}
}

func TestChanConcurrentSenders(t *testing.T) {
	ch := corustine.NewChan[int]()
	const senders, each = 8, 500

	var wg sync.WaitGroup
	for s := range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range each {
				ch.Send(s*each + i)
			}
		}()
	}
	wg.Wait()

	got := make([]int, 0, senders*each)
	lastBySender := make(map[int]int)
	for {
		v, ok := ch.Recv()
		if !ok {
			break
		}
		s := v / each
		if last, seen := lastBySender[s]; seen && v <= last {
			t.Fatalf("sender %d reordered: %d after %d", s, v, last)
		}
		lastBySender[s] = v
		got = append(got, v)
	}
	if len(got) != senders*each {
		t.Fatalf("received %d, want %d", len(got), senders*each)
	}
	sort.Ints(got)
	for i, v := range got {
		if v != i {
			t.Fatalf("missing or duplicated element at %d: %d", i, v)
		}
	}
}
