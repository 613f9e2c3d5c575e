package availability

import "github.com/BruksfildServices01/cabin-scheduler/internal/dates"

// ===============================
// Resource
// ===============================

type ResourceKind string

const (
	KindCabin     ResourceKind = "cabin"
	KindEquipment ResourceKind = "equipment"
)

type ResourceRef struct {
	Kind ResourceKind
	ID   uint
}

func Cabin(id uint) ResourceRef {
	return ResourceRef{Kind: KindCabin, ID: id}
}

func Equipment(id uint) ResourceRef {
	return ResourceRef{Kind: KindEquipment, ID: id}
}

// ===============================
// Blocking interval
// ===============================

type Reason string

const (
	ReasonReserved    Reason = "reserved"
	ReasonMaintenance Reason = "maintenance"
)

// Interval é uma reserva ativa ou uma manutenção ativa de um recurso.
type Interval struct {
	Resource ResourceRef
	Reason   Reason
	SourceID uint
	Range    dates.Range
}
