package prompt

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Known prompt names
const (
	RoleSetup                = "role_setup"
	PostRequirements         = "post_requirements"
	ActiveGameRecommendation = "active_game_recommendation"
	SayHello                 = "say_hello"
	NewsPush                 = "news_push"
	FreeGamePush             = "free_game_push"
	DiscountPush             = "discount_push"
)

// defaults ship with the binary and back any name missing from prompts.json
var defaults = map[string]string{
	RoleSetup:        "你是一只陪伴在玩家桌面上的电子宠物，性格活泼，说话简短俏皮，偶尔用颜文字。",
	PostRequirements: "回复控制在60字以内，不要使用markdown格式，直接输出要说的话。",
	ActiveGameRecommendation: "玩家最近在玩《{recent_game}》，已经玩了{recent_hours}小时。" +
		"他的游戏库里一共有{game_count}款游戏，总时长{total_hours}小时。" +
		"从他最常玩的游戏里挑一款，用一句话安利他今天玩这个。",
	SayHello: "玩家昵称是{persona}，Steam等级{level}，库里有{game_count}款游戏，总时长{total_hours}小时，" +
		"最近在玩{recent_games}。账号创建于{created}，已经{account_age}年了，上次离线是{last_logoff}。" +
		"跟他打个招呼，顺带提一句他的游戏近况。",
	NewsPush:     "今天有这些游戏新闻：{news_titles}。挑一条你觉得玩家会感兴趣的，用一两句话播报给他。",
	FreeGamePush: "Epic正在送这些游戏：{free_games}。提醒玩家快去领，语气兴奋一点。",
	DiscountPush: "玩家愿望单里这些游戏在打折：{discounts}。挑折扣最大的提醒他，可以帮他算算省多少钱。",
}

// wrapper prompts frame every other prompt and are never wrapped themselves
func isWrapper(name string) bool {
	return name == RoleSetup || name == PostRequirements
}

// Store holds named prompt templates backed by prompts.json. Templates use
// {placeholder} markers substituted at assembly time.
type Store struct {
	path    string
	onError func(error)

	mu        sync.RWMutex
	templates map[string]string
}

// NewStore loads prompt templates from path, falling back to the built-in
// defaults for missing names. A corrupt file is reported and ignored.
func NewStore(path string, onError func(error)) *Store {
	s := &Store{path: path, onError: onError, templates: map[string]string{}}
	for name, tpl := range defaults {
		s.templates[name] = tpl
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path is derived from the data dir
	if err != nil {
		if !os.IsNotExist(err) && onError != nil {
			onError(fmt.Errorf("read prompts: %w", err))
		}
		return s
	}

	var loaded map[string]string
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("[WARN] prompts file corrupt, using defaults: %v", err)
		if onError != nil {
			onError(fmt.Errorf("decode prompts: %w", err))
		}
		return s
	}
	for name, tpl := range loaded {
		s.templates[name] = tpl
	}
	return s
}

// Get returns the raw template for name
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[name]
	return tpl, ok
}

// Set replaces the template for name
func (s *Store) Set(name, tpl string) {
	s.mu.Lock()
	s.templates[name] = tpl
	s.mu.Unlock()
}

// Names returns all known template names
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	return names
}

// Save writes all templates back to prompts.json, 2-space indented
func (s *Store) Save() error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.templates, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode prompts: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prompts dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return fmt.Errorf("write prompts: %w", err)
	}
	return nil
}

// Assemble builds the final prompt for name: role_setup, a blank line, the
// body, a blank line, post_requirements, then placeholder substitution.
// Wrapper prompts are returned with substitution only. Each {key} from vars
// is replaced in a single pass, so substituted text is never re-scanned.
func (s *Store) Assemble(name string, vars map[string]string) (string, error) {
	body, ok := s.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}

	text := body
	if !isWrapper(name) {
		role, _ := s.Get(RoleSetup)
		post, _ := s.Get(PostRequirements)
		text = role + "\n\n" + body + "\n\n" + post
	}

	if len(vars) == 0 {
		return text, nil
	}
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text), nil
}
