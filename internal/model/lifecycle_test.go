package model_test

import (
	"testing"

	"giftlist/internal/model"
)

func TestLifecyclePredicates(t *testing.T) {
	open := &model.Reservation{ID: "r1", ItemID: "i1", Status: model.ReservationOpen}
	closed := &model.Reservation{ID: "r1", ItemID: "i1", Status: model.ReservationClosed}

	tests := []struct {
		name string
		res  *model.Reservation

		isReserved bool
		isReceived bool
		deletable  bool
		archivable bool
		movable    bool
		receivable bool
	}{
		{
			name:      "no reservation",
			res:       nil,
			deletable: true, archivable: true, movable: true,
		},
		{
			name:       "open reservation",
			res:        open,
			isReserved: true, receivable: true,
		},
		{
			name:       "closed reservation",
			res:        closed,
			isReserved: true, isReceived: true, archivable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.IsReserved(tt.res); got != tt.isReserved {
				t.Errorf("IsReserved = %v, want %v", got, tt.isReserved)
			}
			if got := model.IsReceived(tt.res); got != tt.isReceived {
				t.Errorf("IsReceived = %v, want %v", got, tt.isReceived)
			}
			if got := model.Deletable(tt.res); got != tt.deletable {
				t.Errorf("Deletable = %v, want %v", got, tt.deletable)
			}
			if got := model.Archivable(tt.res); got != tt.archivable {
				t.Errorf("Archivable = %v, want %v", got, tt.archivable)
			}
			if got := model.Movable(tt.res); got != tt.movable {
				t.Errorf("Movable = %v, want %v", got, tt.movable)
			}
			if got := model.Receivable(tt.res); got != tt.receivable {
				t.Errorf("Receivable = %v, want %v", got, tt.receivable)
			}
		})
	}
}

func TestItemRepCarriesPredicates(t *testing.T) {
	item := model.Item{ID: "i1", ListID: "l1", Title: "Wool socks"}
	open := &model.Reservation{ID: "r1", ItemID: "i1", Status: model.ReservationOpen}

	rep := model.NewItemRep(item, open)
	if !rep.IsReserved || !rep.Receivable {
		t.Errorf("open reservation: IsReserved=%v Receivable=%v, want both true", rep.IsReserved, rep.Receivable)
	}
	if rep.Deletable || rep.Movable || rep.Archivable || rep.IsReceived {
		t.Errorf("open reservation: Deletable=%v Movable=%v Archivable=%v IsReceived=%v, want all false",
			rep.Deletable, rep.Movable, rep.Archivable, rep.IsReceived)
	}

	rep = model.NewItemRep(item, nil)
	if !rep.Deletable || !rep.Movable || !rep.Archivable {
		t.Errorf("no reservation: Deletable=%v Movable=%v Archivable=%v, want all true",
			rep.Deletable, rep.Movable, rep.Archivable)
	}
}
