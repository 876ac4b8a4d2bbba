// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/verdant/pkg/clock"
	"github.com/decker502/verdant/pkg/config"
	"github.com/decker502/verdant/pkg/field"
	"github.com/decker502/verdant/pkg/game"
	"github.com/decker502/verdant/pkg/loop"
	"github.com/decker502/verdant/pkg/pointer"
	"github.com/decker502/verdant/pkg/scenes"
	"github.com/decker502/verdant/pkg/utils"
)

// DefaultAppName names the gdata storage directory.
const DefaultAppName = "verdant"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath loads the field configuration from disk instead of the
	// embedded data/field.yaml.
	ConfigPath string
	// Preset overrides the saved tuning preset. Empty keeps the saved one.
	Preset string
	// Seed seeds the particle RNG; 0 picks a time-based seed.
	Seed int64
	// Fullscreen forces fullscreen on start regardless of saved settings.
	Fullscreen bool
	// AppName overrides DefaultAppName for preference storage.
	AppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.FieldConfig
	settings     *game.SettingsManager
	sceneManager *game.SceneManager
	animator     *loop.Animator
	verbose      bool

	displayApplied bool // saved display settings pushed to ebiten
	closed         bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings := game.NewSettingsManager(openStorage(cfg.AppName))
	if cfg.Preset != "" {
		settings.SetPreset(cfg.Preset)
	}
	if cfg.Fullscreen {
		settings.SetFullscreen(true)
	}

	fieldCfg, err := loadFieldConfig(cfg.ConfigPath, settings.GetSettings().Preset)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Field seed: %d", seed)

	f, err := field.New(fieldCfg.Field, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("field init failed: %w", err)
	}
	tracker := pointer.NewTracker(clock.Real(), fieldCfg.Pointer.QuietPeriod())
	animator, err := loop.New(f, tracker)
	if err != nil {
		return nil, fmt.Errorf("animator init failed: %w", err)
	}

	hero, err := scenes.NewHeroScene(fieldCfg, animator, settings, nil)
	if err != nil {
		animator.Stop()
		return nil, fmt.Errorf("hero scene init failed: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(hero)
	log.Printf("[App] Started with %d particles", f.Len())

	return &App{
		cfg:          fieldCfg,
		settings:     settings,
		sceneManager: sceneManager,
		animator:     animator,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage opens the preference store. Failure is not fatal: the app
// runs with in-memory settings.
func openStorage(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: preference storage unavailable: %v", err)
		return nil
	}
	return m
}

// loadFieldConfig picks the config source and applies the preset.
// An unknown preset is logged and ignored so a stale saved name can't
// block startup.
func loadFieldConfig(path, preset string) (*config.FieldConfig, error) {
	var (
		cfg *config.FieldConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadFieldConfig(path)
	} else {
		cfg, err = config.LoadEmbeddedFieldConfig(config.DefaultFieldConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("field config load failed: %w", err)
	}
	log.Printf("[Config] Loaded field config (%d particles)", cfg.Field.Count)

	if preset == "" {
		return cfg, nil
	}
	withPreset, err := config.ApplyPreset(cfg, preset)
	if err != nil {
		log.Printf("[Config] Warning: %v (using shipped tuning)", err)
		return cfg, nil
	}
	log.Printf("[Config] Applied preset %q", preset)
	return withPreset, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !a.displayApplied {
		a.applyDisplaySettings()
		a.displayApplied = true
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	// C 切换自定义光标（触屏设备没有光标）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.toggleCustomCursor()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) applyDisplaySettings() {
	s := a.settings.GetSettings()
	ebiten.SetFullscreen(s.Fullscreen)
	applyCursorMode(s.CustomCursor)
}

func (a *App) toggleFullscreen() {
	enabled := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(enabled)
	a.settings.SetFullscreen(enabled)
	a.saveSettings()
	log.Printf("[App] Fullscreen: %v", enabled)
}

func (a *App) toggleCustomCursor() {
	enabled := !a.settings.GetSettings().CustomCursor
	a.settings.SetCustomCursor(enabled)
	applyCursorMode(enabled)
	a.saveSettings()
	log.Printf("[App] Custom cursor: %v", enabled)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

func applyCursorMode(custom bool) {
	if utils.IsMobile() {
		return
	}
	if custom {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// The hero fills the window, so the outside size is the viewport and is
// passed on to the scene for pointer normalization.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the animation and saves preferences. Safe to call twice.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.sceneManager.Dispose()
	a.saveSettings()
	log.Printf("[App] Closed")
}

// FieldConfig returns the active configuration.
func (a *App) FieldConfig() *config.FieldConfig {
	return a.cfg
}

// Settings returns the preference manager.
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Animator returns the running animator.
func (a *App) Animator() *loop.Animator {
	return a.animator
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
