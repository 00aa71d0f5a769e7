package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
)

// Template is an immutable item definition. Instances built from it share
// its kind and get fresh ids and independent facet state.
type Template struct {
	ID          string
	Name        string
	Description string
	Def         ItemDef

	opts   []item.Option
	facets []item.Facet
}

// Facets lists the facets every instance of the template carries.
func (t *Template) Facets() []item.Facet { return slices.Clone(t.facets) }

// Catalog holds every loaded template, spawn list and container. It is
// written during loading and read-only afterwards.
type Catalog struct {
	templates  map[string]*Template
	spawnLists map[string]SpawnListDef
	regions    map[int]string
	containers map[string]ContainerDef
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		templates:  make(map[string]*Template),
		spawnLists: make(map[string]SpawnListDef),
		regions:    make(map[int]string),
		containers: make(map[string]ContainerDef),
	}
}

// Load reads both files with the loader and builds a catalog. Any failure
// aborts the whole load.
func Load(ctx context.Context, loader Loader, itemsPath, populationPath string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	items, err := loader.LoadItems(itemsPath)
	if err != nil {
		return nil, err
	}
	c := New()
	if err := c.AddItems(items); err != nil {
		return nil, err
	}
	log.Info(LogMsgItemsLoaded, LogFieldPath, itemsPath, LogFieldTemplates, len(c.templates))

	if populationPath == "" {
		return c, nil
	}
	pop, err := loader.LoadPopulation(populationPath)
	if err != nil {
		return nil, err
	}
	if err := c.AddPopulation(pop); err != nil {
		return nil, err
	}
	log.Info(LogMsgPopulationLoaded,
		LogFieldPath, populationPath,
		LogFieldSpawnLists, len(c.spawnLists),
		LogFieldContainers, len(c.containers))
	return c, nil
}

// AddItems registers templates. It is all-or-nothing: a duplicate id or a
// facet that fails to build leaves the catalog unchanged.
func (c *Catalog) AddItems(file *ItemsFile) error {
	if file == nil {
		return fmt.Errorf("%w: nil items file", domain.ErrInvalidArgument)
	}
	staged := make(map[string]*Template, len(file.Items))
	for _, def := range file.Items {
		if _, ok := c.templates[def.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateTemplate, domain.ErrDuplicateIdentity, def.ID)
		}
		if _, ok := staged[def.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateTemplate, domain.ErrDuplicateIdentity, def.ID)
		}
		tpl, err := compileTemplate(def)
		if err != nil {
			return err
		}
		staged[def.ID] = tpl
	}
	for id, tpl := range staged {
		c.templates[id] = tpl
	}
	return nil
}

// AddPopulation registers spawn lists and containers after checking that
// every template they reference exists. Each region takes at most one list.
func (c *Catalog) AddPopulation(file *PopulationFile) error {
	if file == nil {
		return fmt.Errorf("%w: nil population file", domain.ErrInvalidArgument)
	}

	lists := make(map[string]SpawnListDef, len(file.SpawnLists))
	regions := make(map[int]string, len(file.SpawnLists))
	for _, list := range file.SpawnLists {
		if _, ok := c.spawnLists[list.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateSpawnList, domain.ErrDuplicateIdentity, list.ID)
		}
		if _, ok := lists[list.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateSpawnList, domain.ErrDuplicateIdentity, list.ID)
		}
		if other, ok := c.regions[list.Region]; ok {
			return fmt.Errorf(ErrFmtDuplicateRegion, domain.ErrDuplicateIdentity, list.Region, other)
		}
		if other, ok := regions[list.Region]; ok {
			return fmt.Errorf(ErrFmtDuplicateRegion, domain.ErrDuplicateIdentity, list.Region, other)
		}
		for _, e := range list.Entries {
			if err := c.requireTemplate(e.Template, "spawn list "+list.ID); err != nil {
				return err
			}
		}
		lists[list.ID] = list
		regions[list.Region] = list.ID
	}

	containers := make(map[string]ContainerDef, len(file.Containers))
	for _, box := range file.Containers {
		if _, ok := c.containers[box.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateContainer, domain.ErrDuplicateIdentity, box.ID)
		}
		if _, ok := containers[box.ID]; ok {
			return fmt.Errorf(ErrFmtDuplicateContainer, domain.ErrDuplicateIdentity, box.ID)
		}
		for _, f := range box.Fixed {
			if err := c.requireTemplate(f.Template, "container "+box.ID); err != nil {
				return err
			}
		}
		for _, e := range box.Table {
			if err := c.requireTemplate(e.Template, "container "+box.ID); err != nil {
				return err
			}
		}
		containers[box.ID] = box
	}

	for id, list := range lists {
		c.spawnLists[id] = list
	}
	for region, id := range regions {
		c.regions[region] = id
	}
	for id, box := range containers {
		c.containers[id] = box
	}
	return nil
}

func (c *Catalog) requireTemplate(id, owner string) error {
	if _, ok := c.templates[id]; !ok {
		return fmt.Errorf(ErrFmtUnknownTemplate, domain.ErrTemplateNotFound, id, owner)
	}
	return nil
}

// CheckHealth fails until at least one template is loaded.
func (c *Catalog) CheckHealth(ctx context.Context) error {
	if len(c.templates) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// Template returns the template with the given id.
func (c *Catalog) Template(id string) (*Template, error) {
	tpl, ok := c.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	return tpl, nil
}

// Templates lists every template ordered by id.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, 0, len(c.templates))
	for _, tpl := range c.templates {
		out = append(out, tpl)
	}
	slices.SortFunc(out, func(a, b *Template) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Has reports whether a template exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.templates[id]
	return ok
}

// Instantiate builds a fresh item from a template.
func (c *Catalog) Instantiate(id string) (*item.Item, error) {
	tpl, err := c.Template(id)
	if err != nil {
		return nil, err
	}
	return item.New(tpl.ID, tpl.Name, tpl.opts...)
}

// InstantiateN builds qty units of a template. Stackable templates become
// as few stacks as their max-per-slot allows; anything else becomes qty
// separate items.
func (c *Catalog) InstantiateN(id string, qty int) ([]*item.Item, error) {
	if qty < 1 {
		return nil, fmt.Errorf(ErrFmtInstantiateQuantity, domain.ErrInvalidArgument, qty, id)
	}
	tpl, err := c.Template(id)
	if err != nil {
		return nil, err
	}

	var out []*item.Item
	if tpl.Def.Stack == nil {
		for range qty {
			it, err := item.New(tpl.ID, tpl.Name, tpl.opts...)
			if err != nil {
				return nil, err
			}
			out = append(out, it)
		}
		return out, nil
	}

	for left := qty; left > 0; {
		it, err := item.New(tpl.ID, tpl.Name, tpl.opts...)
		if err != nil {
			return nil, err
		}
		stack, _ := it.Stackable()
		n := left
		if stack.Bounded() && n > stack.MaxPerSlot() {
			n = stack.MaxPerSlot()
		}
		if err := stack.SetQuantity(n); err != nil {
			return nil, err
		}
		out = append(out, it)
		left -= n
	}
	return out, nil
}

// SpawnLists returns every spawn list ordered by region.
func (c *Catalog) SpawnLists() []SpawnListDef {
	out := make([]SpawnListDef, 0, len(c.spawnLists))
	for _, list := range c.spawnLists {
		out = append(out, list)
	}
	slices.SortFunc(out, func(a, b SpawnListDef) int { return a.Region - b.Region })
	return out
}

// Container returns a loot container definition.
func (c *Catalog) Container(id string) (ContainerDef, error) {
	box, ok := c.containers[id]
	if !ok {
		return ContainerDef{}, fmt.Errorf("%w: container %q", domain.ErrTemplateNotFound, id)
	}
	return box, nil
}

// Containers lists container ids in order.
func (c *Catalog) Containers() []string {
	ids := make([]string, 0, len(c.containers))
	for id := range c.containers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DisplayName derives a title-cased name from a template id,
// e.g. "healing_potion" becomes "Healing Potion".
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// compileTemplate turns a definition into reusable item options and builds
// one probe instance so invalid facets fail at load time.
func compileTemplate(def ItemDef) (*Template, error) {
	tpl := &Template{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Def:         def,
	}
	if tpl.Name == "" {
		tpl.Name = DisplayName(def.ID)
	}

	if def.Size != "" {
		size, err := domain.ParseSize(def.Size)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtTemplateFacet, def.ID, err)
		}
		tpl.opts = append(tpl.opts, item.WithSize(size))
	}
	if def.Color != nil {
		pair, err := parseColors(def.Color)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtTemplateFacet, def.ID, err)
		}
		tpl.opts = append(tpl.opts, item.WithColors(pair))
	}
	if def.Positioned {
		tpl.opts = append(tpl.opts, item.WithPosition(domain.Position{}))
	}
	if def.Dimensions != nil {
		tpl.opts = append(tpl.opts, item.WithDimensions(def.Dimensions.Rows, def.Dimensions.Cols))
	}
	if def.Stack != nil {
		qty := def.Stack.Quantity
		if qty == 0 {
			qty = 1
		}
		tpl.opts = append(tpl.opts, item.WithStack(item.StackSpec{
			Quantity:   qty,
			Value:      def.Stack.Value,
			Mergeable:  def.Stack.Mergeable,
			MaxPerSlot: def.Stack.MaxPerSlot,
		}))
	}
	if def.Equip != nil {
		slots := make([]domain.Slot, 0, len(def.Equip.Slots))
		for _, name := range def.Equip.Slots {
			slot, err := domain.ParseSlot(name)
			if err != nil {
				return nil, fmt.Errorf(ErrFmtTemplateFacet, def.ID, err)
			}
			slots = append(slots, slot)
		}
		tpl.opts = append(tpl.opts, item.WithEquip(item.EquipSpec{
			Equipable: def.Equip.Equipable,
			Slots:     domain.NewSlotSet(slots...),
			Range:     def.Equip.Range,
			Damage:    def.Equip.Damage,
			Modifiers: def.Equip.Modifiers,
		}))
	}
	if def.Use != nil {
		tpl.opts = append(tpl.opts, item.WithUse(item.UseSpec{
			Disposable:  def.Use.Disposable,
			Loadable:    def.Use.Loadable,
			Current:     def.Use.Capacity,
			Maximum:     def.Use.MaxCapacity,
			Ammunition:  def.Use.Ammunition,
			ReloadSpeed: def.Use.ReloadSpeed,
			Modifiers:   def.Use.Modifiers,
			Effect:      def.Use.Effect,
		}))
	}

	probe, err := item.New(tpl.ID, tpl.Name, tpl.opts...)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtTemplateFacet, def.ID, err)
	}
	tpl.facets = probe.Facets()
	return tpl, nil
}

func parseColors(def *ColorDef) (domain.ColorPair, error) {
	fg, err := domain.ParseRGB(def.Foreground)
	if err != nil {
		return domain.ColorPair{}, err
	}
	pair := domain.ColorPair{Foreground: fg}
	if def.Background != "" {
		bg, err := domain.ParseRGB(def.Background)
		if err != nil {
			return domain.ColorPair{}, err
		}
		pair.Background = &bg
	}
	return pair, nil
}
