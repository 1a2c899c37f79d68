package hud

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Each is also the English text.
const (
	KeyScore    = "Score %d"
	KeyLines    = "Lines %d"
	KeyLevel    = "Level %d"
	KeyPieces   = "Pieces %d"
	KeyBest     = "Best %d"
	KeyGameOver = "GAME OVER"
	KeyPaused   = "PAUSED"
	KeyRestart  = "Press R to restart"
	KeyMuted    = "Sound off"
)

var catalog = map[language.Tag]map[string]string{
	language.Korean: {
		KeyScore:    "점수 %d",
		KeyLines:    "줄 %d",
		KeyLevel:    "레벨 %d",
		KeyPieces:   "블록 %d",
		KeyBest:     "최고 %d",
		KeyGameOver: "게임 오버",
		KeyPaused:   "일시 정지",
		KeyRestart:  "R 키로 다시 시작",
		KeyMuted:    "소리 끔",
	},
}

var registerOnce sync.Once

// Register adds the HUD strings to the x/text default catalog. English
// falls back to the keys.
func Register() {
	registerOnce.Do(func() {
		for tag, messages := range catalog {
			for key, msg := range messages {
				if err := message.SetString(tag, key, msg); err != nil {
					panic(err)
				}
			}
		}
	})
}

// Printer returns a printer for tag with the HUD strings registered.
func Printer(tag language.Tag) *message.Printer {
	Register()
	return message.NewPrinter(tag)
}

// FormatScore groups digits the way tag's locale does.
func FormatScore(tag language.Tag, score int) string {
	return message.NewPrinter(tag).Sprintf("%d", score)
}
