package mocks

import (
	"fmt"

	gomock "github.com/golang/mock/gomock"

	types "github.com/hbtc-chain/govledger/types"
)

type intMatcher struct {
	want types.Int
}

// IntEq matches a types.Int by value.
func IntEq(want types.Int) gomock.Matcher {
	return intMatcher{want: want}
}

func (m intMatcher) Matches(x interface{}) bool {
	got, ok := x.(types.Int)
	return ok && got.Equal(m.want)
}

func (m intMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.want)
}

type addrMatcher struct {
	want types.AccAddress
}

// AddrEq matches a types.AccAddress, treating empty and all-zero as equal.
func AddrEq(want types.AccAddress) gomock.Matcher {
	return addrMatcher{want: want}
}

func (m addrMatcher) Matches(x interface{}) bool {
	got, ok := x.(types.AccAddress)
	return ok && got.Equals(m.want)
}

func (m addrMatcher) String() string {
	return fmt.Sprintf("is address %s", m.want)
}
