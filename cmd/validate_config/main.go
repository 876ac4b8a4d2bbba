// Package main validates the field configuration and every preset.
//
// Usage (from the repository root):
//
//	go run ./cmd/validate_config [--config data/field.yaml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/verdant/pkg/config"
	"github.com/decker502/verdant/pkg/embedded"
)

var configFlag = flag.String("config", config.DefaultFieldConfigPath, "Field config file")

func main() {
	flag.Parse()

	if failed := validate(*configFlag); failed > 0 {
		fmt.Printf("❌ %d 个配置无效\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有配置有效\n")
}

// validate checks the base config and each preset applied on top of it,
// printing one line per file. It returns the number of failures.
func validate(path string) int {
	cfg, err := config.LoadFieldConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		return 1
	}
	fmt.Printf("✅ %s: %d 个粒子, 防抖 %v\n", path, cfg.Field.Count, cfg.Pointer.QuietPeriod())

	embedded.Init(os.DirFS("."))
	presets, err := config.ListPresets()
	if err != nil {
		fmt.Printf("❌ %s: %v\n", config.PresetDir, err)
		return 1
	}

	failed := 0
	for _, name := range presets {
		merged, err := config.ApplyPreset(cfg, name)
		if err != nil {
			fmt.Printf("❌ preset %s: %v\n", name, err)
			failed++
			continue
		}
		p := merged.Field
		fmt.Printf("✅ preset %s: count=%d attraction=%g damping=%g\n", name, p.Count, p.Attraction, p.Damping)
	}
	return failed
}
