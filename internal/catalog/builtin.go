package catalog

import (
	"time"

	"missiontracker/internal/engine"
)

// Builtin returns the default mission catalog. Each call returns a fresh slice.
func Builtin() []engine.Mission {
	return []engine.Mission{
		daily("d-login", "ログイン", "🔑", "1日1回ログインしてデイリー達成"),
		daily("w-pioneer", "開拓者褒章", "🎖️", ""),
		daily("d-不安定", "不安定", "🌌", "特殊ミッションのクリア確認"),
		daily("d-シーズンストア", "シーズンストア", "🍂", "上級素材・虚蝕・パワーパーツ"),
		daily("d-ギルド輸送", "ギルド輸送", "🏚️", ""),
		daily("d-モジュール", "モジュール", "⚙️", "分解・交換"),
		stock("d-boss-keys", "ボス戦利品の鍵", "👹", engine.ResourceBoss),
		stock("d-elite-keys", "精鋭戦利品の鍵", "💀", engine.ResourceElite),
		daily("d-mysterious-store", "神秘ストア", "🔮", "ストアをチェック"),
		{
			ID:          "e-guild-dance",
			Name:        "ギルドダンス",
			Type:        engine.MissionTypeEvent,
			Category:    engine.CategoryDaily,
			Image:       "💃",
			Description: "金曜 19:30 - 19:55 開催",
			Kind:        engine.KindCheckbox,
			Activation: engine.Activation{
				Days:   []time.Weekday{time.Friday},
				Window: window(19, 30, 19, 55),
			},
		},
		{
			ID:          "e-guild-hunt",
			Name:        "ギルドハント",
			Type:        engine.MissionTypeEvent,
			Category:    engine.CategoryDaily,
			Image:       "🏹",
			Description: "金・土・日 10:00 - 22:00 開催",
			Kind:        engine.KindCheckbox,
			Activation: engine.Activation{
				Days:   []time.Weekday{time.Friday, time.Saturday, time.Sunday},
				Window: window(10, 0, 22, 0),
			},
		},

		{
			ID:       "w-world-raid",
			Name:     "ワールドレイド",
			Type:     engine.MissionTypeWeekly,
			Category: engine.CategoryWeekly,
			Image:    "🌍",
			Kind:     engine.KindStore,
			SubItems: []engine.SubItem{
				{ID: "day1", Name: "1日目"},
				{ID: "day2", Name: "2日目"},
				{ID: "day3", Name: "3日目"},
			},
		},
		{
			ID:       "d-カラフルストア",
			Name:     "カラフルストア",
			Type:     engine.MissionTypeWeekly,
			Category: engine.CategoryWeekly,
			Image:    "💎",
			Kind:     engine.KindStore,
			SubItems: []engine.SubItem{
				{ID: "rose", Name: "ローズジェム"},
				{ID: "friend", Name: "友情ポイント"},
				{ID: "gc", Name: "GC"},
				{ID: "fame", Name: "名声"},
			},
		},
		{
			ID:       "w-guild",
			Name:     "ギルド週間活躍度報酬",
			Type:     engine.MissionTypeWeekly,
			Category: engine.CategoryWeekly,
			Image:    "📊",
			Kind:     engine.KindCheckbox,
		},
		{
			ID:            "w-ruins",
			Name:          "レグディニス遺跡",
			Type:          engine.MissionTypeWeekly,
			Category:      engine.CategoryWeekly,
			Image:         "🏰",
			Kind:          engine.KindRuins,
			ResetInterval: engine.CadenceBiWeekly,
		},
		{
			ID:       "w-raid",
			Name:     "浮島レイド（神竜の枷）",
			Type:     engine.MissionTypeWeekly,
			Category: engine.CategoryWeekly,
			Image:    "🐉",
			Kind:     engine.KindRaid,
			SubItems: []engine.SubItem{
				{ID: "ice", Name: "氷竜"},
				{ID: "dark", Name: "闇竜"},
				{ID: "light", Name: "光竜"},
			},
		},
	}
}

func daily(id, name, image, desc string) engine.Mission {
	return engine.Mission{
		ID:          id,
		Name:        name,
		Type:        engine.MissionTypeDaily,
		Category:    engine.CategoryDaily,
		Image:       image,
		Description: desc,
		Kind:        engine.KindCheckbox,
	}
}

func stock(id, name, image string, r engine.Resource) engine.Mission {
	return engine.Mission{
		ID:       id,
		Name:     name,
		Type:     engine.MissionTypeDaily,
		Category: engine.CategoryDaily,
		Image:    image,
		Kind:     engine.KindStock,
		Stock:    engine.StockOptions{Resource: r},
	}
}

func window(sh, sm, eh, em int) *engine.TimeWindow {
	return &engine.TimeWindow{
		Start: engine.ClockTime{Hour: sh, Minute: sm},
		End:   engine.ClockTime{Hour: eh, Minute: em},
	}
}
