package model

import "fmt"

// SlotCommitment is the confirmation level of a slot.
type SlotCommitment string

const (
	SlotProcessed SlotCommitment = "processed"
	SlotConfirmed SlotCommitment = "confirmed"
	SlotFinalized SlotCommitment = "finalized"
	SlotRooted    SlotCommitment = "rooted"
	SlotDead      SlotCommitment = "dead"
)

// ParseSlotCommitment accepts the lowercase commitment names.
func ParseSlotCommitment(s string) (SlotCommitment, error) {
	switch c := SlotCommitment(s); c {
	case SlotProcessed, SlotConfirmed, SlotFinalized, SlotRooted, SlotDead:
		return c, nil
	default:
		return "", fmt.Errorf("unknown slot commitment %q", s)
	}
}

func (c SlotCommitment) String() string {
	return string(c)
}
