package system

import (
	"math"
	"testing"

	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/pkg/gridmap"
)

func TestSupportBoostsNearbyTowers(t *testing.T) {
	ecs := entity.NewECS()
	support := NewSupportSystem(ecs)

	shooter := addTower(ecs, "TOWER_SHOOTER", gridmap.Cell{X: 5, Y: 5}, 1)
	addTower(ecs, "TOWER_AMPLIFIER", gridmap.Cell{X: 6, Y: 5}, 1)
	addTower(ecs, "TOWER_HEATSINK", gridmap.Cell{X: 5, Y: 6}, 2)
	addTower(ecs, "TOWER_RANGEFINDER", gridmap.Cell{X: 4, Y: 5}, 1)
	outOfRange := addTower(ecs, "TOWER_SHOOTER", gridmap.Cell{X: 12, Y: 5}, 1)

	support.Update(1.0 / 60.0)

	boost := ecs.Combats[shooter].Boost
	if math.Abs(boost.DamageMult-1.25) > 1e-9 {
		t.Errorf("Expected damage mult 1.25 from a level-1 amplifier, got %v", boost.DamageMult)
	}
	if math.Abs(boost.CooldownCut-0.6) > 1e-9 {
		t.Errorf("Expected cooldown cut 0.6 from a level-2 heat sink, got %v", boost.CooldownCut)
	}
	if math.Abs(boost.RangeBonus-1) > 1e-9 {
		t.Errorf("Expected range bonus 1, got %v", boost.RangeBonus)
	}

	far := ecs.Combats[outOfRange].Boost
	if far.DamageMult != 1 || far.CooldownCut != 0 || far.RangeBonus != 0 {
		t.Errorf("Expected neutral boost outside support radius, got %+v", far)
	}
}

func TestSupportEffectsDropWhenTowerSold(t *testing.T) {
	ecs := entity.NewECS()
	support := NewSupportSystem(ecs)

	shooter := addTower(ecs, "TOWER_SHOOTER", gridmap.Cell{X: 5, Y: 5}, 1)
	amplifier := addTower(ecs, "TOWER_AMPLIFIER", gridmap.Cell{X: 6, Y: 5}, 1)

	support.Update(1.0 / 60.0)
	if ecs.Combats[shooter].Boost.DamageMult == 1 {
		t.Fatal("Expected boost while the amplifier stands")
	}

	delete(ecs.Towers, amplifier)
	support.Update(1.0 / 60.0)
	if got := ecs.Combats[shooter].Boost.DamageMult; got != 1 {
		t.Errorf("Expected neutral boost after selling the amplifier, got %v", got)
	}
}

func TestCorroderStripsArmor(t *testing.T) {
	ecs := entity.NewECS()
	support := NewSupportSystem(ecs)

	path := straightPath(10)
	addTower(ecs, "TOWER_CORRODER", gridmap.Cell{X: 5, Y: 4}, 2)
	near := addEnemy(ecs, "ENEMY_SOLDIER", path, 5)
	far := addEnemy(ecs, "ENEMY_SOLDIER", path, 0)

	support.Update(1.0 / 60.0)

	if got := ecs.Enemies[near].Corrosion; math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected 0.3 corrosion from a level-2 corroder, got %v", got)
	}
	if got := ecs.Enemies[far].Corrosion; got != 0 {
		t.Errorf("Expected no corrosion out of radius, got %v", got)
	}

	// Corrosion beyond armor never heals the target: reduction clamps at 0.
	if killed := ApplyDamage(ecs, near, 10); killed {
		t.Fatal("10 damage should not kill a soldier")
	}
	if got := ecs.Healths[near].Value; got != 130 {
		t.Errorf("Expected full 10 damage through corroded armor, got health %v", got)
	}
}

func TestFrostFieldsDoNotStack(t *testing.T) {
	ecs := entity.NewECS()
	support := NewSupportSystem(ecs)

	path := straightPath(10)
	addTower(ecs, "TOWER_FROST", gridmap.Cell{X: 5, Y: 4}, 1)
	addTower(ecs, "TOWER_FROST", gridmap.Cell{X: 5, Y: 6}, 1)
	id := addEnemy(ecs, "ENEMY_SCOUT", path, 5)

	support.Update(1.0 / 60.0)

	if got := ecs.Enemies[id].SlowFactor; math.Abs(got-0.55) > 1e-9 {
		t.Errorf("Expected slow factor 0.55 under overlapping fields, got %v", got)
	}

	// Leaving the fields restores full speed on the next tick.
	ecs.Positions[id].X += 1000
	support.Update(1.0 / 60.0)
	if got := ecs.Enemies[id].SlowFactor; got != 1 {
		t.Errorf("Expected slow factor reset to 1, got %v", got)
	}
}

func TestApplyDamageArmor(t *testing.T) {
	tests := []struct {
		name      string
		defID     string
		corrosion float64
		damage    float64
		wantLost  float64
	}{
		{"No armor", "ENEMY_SCOUT", 0, 10, 10},
		{"Soldier armor", "ENEMY_SOLDIER", 0, 10, 9},
		{"Boss armor", "ENEMY_BOSS", 0, 10, 7},
		{"Corroded soldier", "ENEMY_SOLDIER", 0.04, 10, 9.4},
		{"Corrosion past zero clamps", "ENEMY_SCOUT", 5, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			path := straightPath(4)
			id := addEnemy(ecs, tt.defID, path, 0)
			ecs.Enemies[id].Corrosion = tt.corrosion
			before := ecs.Healths[id].Value

			ApplyDamage(ecs, id, tt.damage)

			lost := before - ecs.Healths[id].Value
			if math.Abs(lost-tt.wantLost) > 1e-9 {
				t.Errorf("Expected %v health lost, got %v", tt.wantLost, lost)
			}
		})
	}
}

func TestApplyDamageKillReport(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	path := straightPath(4)
	id := addEnemy(ecs, "ENEMY_SCOUT", path, 0)

	var killed []event.KillInfo
	dispatcher.Subscribe(event.EnemyKilled, listenerFunc(func(e event.Event) {
		if info, ok := e.Data.(event.KillInfo); ok {
			killed = append(killed, info)
		}
	}))

	if !ApplyDamage(ecs, id, 100) {
		t.Fatal("Expected 100 damage to kill a scout")
	}
	reportKill(ecs, dispatcher, id, 42, 0.25)

	if len(killed) != 1 {
		t.Fatalf("Expected one kill event, got %d", len(killed))
	}
	info := killed[0]
	if info.EnemyID != id || info.TowerID != 42 || info.DefID != "ENEMY_SCOUT" || info.GoldBonus != 0.25 {
		t.Errorf("Kill info mangled: %+v", info)
	}

	// A dead enemy absorbs nothing further.
	if ApplyDamage(ecs, id, 10) {
		t.Error("Expected no second kill from an already dead enemy")
	}
}

type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }
