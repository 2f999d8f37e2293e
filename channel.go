// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// segmentCapacity is the capacity of each ring in a channel's segment
// list. A power of two, so lfq does not round it.
const segmentCapacity = 64

// Sender is the sending half of a channel.
type Sender[T any] interface {
	Send(v T)
}

// Receiver is the receiving half of a channel.
type Receiver[T any] interface {
	Recv() (T, bool)
}

// segment is one bounded ring in the channel's unbounded queue.
// Segments are only appended when the tail ring is full, so every element
// of a segment precedes every element of the segments after it.
type segment[T any] struct {
	ring lfq.SPSC[T]
	next *segment[T]
}

func newSegment[T any]() *segment[T] {
	s := &segment[T]{}
	s.ring.Init(segmentCapacity)
	return s
}

// queue is the shared backing store of a channel.
// The mutex serializes producers and consumers, so each ring sees a
// single producer and a single consumer at a time.
type queue[T any] struct {
	mu     sync.Mutex
	head   *segment[T]
	tail   *segment[T]
	n      int
	serial Serial
}

// Chan is an unbounded FIFO channel handle.
// Copies of a Chan share the same queue, so one channel can be captured by
// several coroutines. Send never blocks and Recv never waits; receivers
// detect the end of a stream in-band.
//
// The zero Chan is not usable; create one with NewChan.
type Chan[T any] struct {
	q *queue[T]
}

// NewChan creates an empty channel.
func NewChan[T any]() Chan[T] {
	seg := newSegment[T]()
	return Chan[T]{q: &queue[T]{head: seg, tail: seg, serial: nextSerial()}}
}

// Serial returns the serial number assigned to this channel.
func (c Chan[T]) Serial() Serial {
	return c.q.serial
}

// Send appends v to the tail of the channel. It always succeeds.
func (c Chan[T]) Send(v T) {
	q := c.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.tail.ring.Enqueue(&v); err != nil {
		if !iox.IsWouldBlock(err) {
			panic("corustine: channel enqueue: " + err.Error())
		}
		seg := newSegment[T]()
		if err := seg.ring.Enqueue(&v); err != nil {
			panic("corustine: channel enqueue: " + err.Error())
		}
		q.tail.next = seg
		q.tail = seg
	}
	q.n++
}

// TryRecv removes and returns the head of the channel.
// It returns iox.ErrWouldBlock when the channel is empty.
func (c Chan[T]) TryRecv() (T, error) {
	q := c.q
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		v, err := q.head.ring.Dequeue()
		if err == nil {
			q.n--
			return v, nil
		}
		if !iox.IsWouldBlock(err) || q.head.next == nil {
			var zero T
			return zero, err
		}
		q.head = q.head.next
	}
}

// Recv removes and returns the head of the channel, or reports false if
// the channel is empty.
func (c Chan[T]) Recv() (T, bool) {
	v, err := c.TryRecv()
	return v, err == nil
}

// Len returns the number of elements currently queued.
func (c Chan[T]) Len() int {
	q := c.q
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}
