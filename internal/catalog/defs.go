package catalog

import "github.com/R-Gerard/Roguelike-sub001/internal/domain"

// ItemsFile is the on-disk shape of an item template file.
type ItemsFile struct {
	Version     string    `json:"version" validate:"required"`
	Description string    `json:"description"`
	Items       []ItemDef `json:"items" validate:"required,min=1,dive"`
}

// ItemDef is a single item template. Nil facet blocks mean the facet is
// absent.
type ItemDef struct {
	ID          string             `json:"id" validate:"required"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Size        string             `json:"size"`
	Color       *ColorDef          `json:"color,omitempty"`
	Positioned  bool               `json:"positioned"`
	Dimensions  *domain.Dimensions `json:"dimensions,omitempty"`
	Stack       *StackDef          `json:"stack,omitempty"`
	Equip       *EquipDef          `json:"equip,omitempty"`
	Use         *UseDef            `json:"use,omitempty"`
}

type ColorDef struct {
	Foreground string `json:"foreground" validate:"required"`
	Background string `json:"background,omitempty"`
}

// StackDef is the quantity facet of a template. A zero quantity means one,
// since an instance must not start logically deleted.
type StackDef struct {
	Quantity   int  `json:"quantity" validate:"gte=0"`
	Value      int  `json:"value" validate:"gte=0"`
	Mergeable  bool `json:"mergeable"`
	MaxPerSlot int  `json:"max_per_slot" validate:"gte=-1"`
}

type EquipDef struct {
	Equipable bool             `json:"equipable"`
	Slots     []string         `json:"slots"`
	Range     int              `json:"range" validate:"gte=0"`
	Damage    int              `json:"damage" validate:"gte=0"`
	Modifiers domain.StatBlock `json:"modifiers"`
}

type UseDef struct {
	Disposable  bool             `json:"disposable"`
	Loadable    bool             `json:"loadable"`
	Capacity    int              `json:"capacity" validate:"gte=0"`
	MaxCapacity int              `json:"max_capacity" validate:"gte=0"`
	Ammunition  string           `json:"ammunition" validate:"required_if=Loadable true"`
	ReloadSpeed int              `json:"reload_speed" validate:"gte=0"`
	Modifiers   domain.StatBlock `json:"modifiers"`
	Effect      string           `json:"effect"`
}

// PopulationFile is the on-disk shape of spawn lists and loot containers.
type PopulationFile struct {
	Version     string         `json:"version" validate:"required"`
	Description string         `json:"description"`
	SpawnLists  []SpawnListDef `json:"spawn_lists" validate:"dive"`
	Containers  []ContainerDef `json:"containers" validate:"dive"`
}

// EntryDef is one weighted row of a spawn or loot table.
type EntryDef struct {
	Weight   int    `json:"weight" validate:"gte=1"`
	Template string `json:"template" validate:"required"`
}

// SpawnListDef binds a weighted table to a region with population bounds.
// Cooldown is measured in turns. Leaving it out uses SPAWN_COOLDOWN_TURNS.
type SpawnListDef struct {
	ID       string          `json:"id" validate:"required"`
	Region   int             `json:"region" validate:"gte=0"`
	Entries  []EntryDef      `json:"entries" validate:"required,min=1,dive"`
	MinAlive int             `json:"min_alive" validate:"gte=0"`
	MaxAlive int             `json:"max_alive" validate:"gte=1"`
	Radius   int             `json:"radius" validate:"gte=0"`
	Origin   domain.Position `json:"origin"`
	Cooldown *int64          `json:"cooldown,omitempty" validate:"omitempty,gte=0"`
}

// FixedDef is a guaranteed container item. A zero quantity means one.
type FixedDef struct {
	Template string `json:"template" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// ContainerDef describes a loot container such as a chest.
type ContainerDef struct {
	ID          string     `json:"id" validate:"required"`
	Fixed       []FixedDef `json:"fixed" validate:"dive"`
	RandomSlots int        `json:"random_slots" validate:"gte=0"`
	Table       []EntryDef `json:"table" validate:"dive"`
}
