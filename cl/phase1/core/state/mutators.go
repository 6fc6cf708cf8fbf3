// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package state

// BalanceAccessor is the part of the state balance mutators need.
type BalanceAccessor interface {
	ValidatorBalance(index int) (uint64, error)
	SetValidatorBalance(index int, balance uint64) error
}

func IncreaseBalance(b BalanceAccessor, index, delta uint64) error {
	return ApplyBalanceDelta(b, index, delta, 0)
}

// DecreaseBalance saturates at zero.
func DecreaseBalance(b BalanceAccessor, index, delta uint64) error {
	return ApplyBalanceDelta(b, index, 0, delta)
}

// ApplyBalanceDelta credits reward then debits penalty with a single balance write,
// the result saturates at zero.
func ApplyBalanceDelta(b BalanceAccessor, index, reward, penalty uint64) error {
	balance, err := b.ValidatorBalance(int(index))
	if err != nil {
		return err
	}
	balance += reward
	if balance < penalty {
		balance = 0
	} else {
		balance -= penalty
	}
	return b.SetValidatorBalance(int(index), balance)
}
