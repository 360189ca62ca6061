package service

import "errors"

var (
	ErrNoEquipment   = errors.New("no equipment to assign")
	ErrNegativeIndex = errors.New("exercise index must not be negative")
)

// AssignEquipment picks the equipment for the exercise at index by cycling
// through equipmentIDs in request order: 0,1,0,1,0 for two pieces.
func AssignEquipment(index int, equipmentIDs []int64) (int64, error) {
	if len(equipmentIDs) == 0 {
		return 0, ErrNoEquipment
	}
	if index < 0 {
		return 0, ErrNegativeIndex
	}
	return equipmentIDs[index%len(equipmentIDs)], nil
}
