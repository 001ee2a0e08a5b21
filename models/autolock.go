// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// AutoLockTimeout is the idle period, in minutes, after which an unlocked
// vault is locked. AutoLockNever disables the timer.
type AutoLockTimeout int

const (
	AutoLockNever     AutoLockTimeout = 0
	AutoLockOneMin    AutoLockTimeout = 1
	AutoLockFiveMin   AutoLockTimeout = 5
	AutoLockFifteen   AutoLockTimeout = 15
	AutoLockThirtyMin AutoLockTimeout = 30
)

// DefaultAutoLockTimeout is used when no value has been persisted yet.
const DefaultAutoLockTimeout = AutoLockFifteen

// AutoLockOptions lists the selectable timeouts in the order they are
// offered to the user.
var AutoLockOptions = []AutoLockTimeout{
	AutoLockOneMin,
	AutoLockFiveMin,
	AutoLockFifteen,
	AutoLockThirtyMin,
	AutoLockNever,
}

// Valid reports whether t is one of [AutoLockOptions].
func (t AutoLockTimeout) Valid() bool {
	for _, o := range AutoLockOptions {
		if o == t {
			return true
		}
	}
	return false
}

// Duration converts the timeout to a time.Duration. AutoLockNever yields 0.
func (t AutoLockTimeout) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

// Next returns the option following t, wrapping around.
func (t AutoLockTimeout) Next() AutoLockTimeout {
	for i, o := range AutoLockOptions {
		if o == t {
			return AutoLockOptions[(i+1)%len(AutoLockOptions)]
		}
	}
	return DefaultAutoLockTimeout
}

func (t AutoLockTimeout) String() string {
	switch t {
	case AutoLockNever:
		return "Never"
	case AutoLockOneMin:
		return "1 Minute"
	default:
		return fmt.Sprintf("%d Minutes", int(t))
	}
}
