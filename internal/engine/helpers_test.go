package engine

import "time"

func testCatalog() []Mission {
	return []Mission{
		{ID: "d-login", Name: "Login", Type: MissionTypeDaily, Category: CategoryDaily},
		{ID: "d-boss-keys", Name: "Boss keys", Type: MissionTypeDaily, Category: CategoryDaily, Kind: KindStock, Stock: StockOptions{Resource: ResourceBoss}},
		{
			ID: "e-guild-dance", Name: "Guild dance", Type: MissionTypeEvent, Category: CategoryDaily,
			Activation: Activation{
				Days:   []time.Weekday{time.Friday},
				Window: &TimeWindow{Start: ClockTime{19, 30}, End: ClockTime{19, 55}},
			},
		},
		{
			ID: "w-world-raid", Name: "World raid", Type: MissionTypeWeekly, Category: CategoryWeekly, Kind: KindStore,
			SubItems: []SubItem{{ID: "day1"}, {ID: "day2"}, {ID: "day3"}},
		},
		{ID: "w-ruins", Name: "Ruins", Type: MissionTypeWeekly, Category: CategoryWeekly, Kind: KindRuins, ResetInterval: CadenceBiWeekly},
		{
			ID: "w-raid", Name: "Raid", Type: MissionTypeWeekly, Category: CategoryWeekly, Kind: KindRaid,
			SubItems: []SubItem{{ID: "ice"}, {ID: "dark"}, {ID: "light"}},
			Raid:     RaidOptions{LockedCells: []string{"light_night"}},
		},
	}
}

func tp(t time.Time) *time.Time { return &t }
