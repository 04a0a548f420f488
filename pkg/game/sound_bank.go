package game

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 44100

// maxSoundDuration 单个音效的最长时长
const maxSoundDuration = time.Second

// Sound 音效标识
type Sound int

const (
	SoundLaser Sound = iota
	SoundSplat
	SoundInvaderKilled
	SoundPlayerKilled
	SoundMysteryShip
	soundCount
)

// SoundBank 合成音效库
//
// 所有音效在启动时用 beep 合成并渲染为 16 位立体声 PCM，
// 播放时交给 ebiten audio。audio.Context 为 nil 时静音运行。
type SoundBank struct {
	context *audio.Context
	pcm     [soundCount][]byte
	players [soundCount]*audio.Player
	enabled bool
}

// NewSoundBank 合成全部音效
//
// 参数:
//   - context: ebiten 音频上下文，可为 nil（静音模式）
//
// 返回:
//   - *SoundBank: 音效库
//   - error: 合成失败时返回错误
func NewSoundBank(context *audio.Context) (*SoundBank, error) {
	sb := &SoundBank{context: context, enabled: context != nil}
	rate := beep.SampleRate(SampleRate)
	for s := Sound(0); s < soundCount; s++ {
		streamer, err := synthesize(s, rate)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize sound %d: %w", s, err)
		}
		sb.pcm[s] = renderPCM(beep.Take(rate.N(maxSoundDuration), streamer))
	}
	return sb, nil
}

// SetEnabled 开关音效
func (sb *SoundBank) SetEnabled(enabled bool) {
	sb.enabled = enabled && sb.context != nil
}

// PCM 返回音效的 PCM 数据（16 位小端立体声）
func (sb *SoundBank) PCM(s Sound) []byte {
	if s < 0 || s >= soundCount {
		return nil
	}
	return sb.pcm[s]
}

// Play 从头播放音效
func (sb *SoundBank) Play(s Sound) {
	if !sb.enabled || s < 0 || s >= soundCount {
		return
	}
	player := sb.players[s]
	if player == nil {
		player = sb.context.NewPlayerFromBytes(sb.pcm[s])
		sb.players[s] = player
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[SoundBank] Failed to rewind sound %d: %v", s, err)
		return
	}
	player.Play()
}

// synthesize 生成音效的流
func synthesize(s Sound, rate beep.SampleRate) (beep.Streamer, error) {
	switch s {
	case SoundLaser:
		tone, err := generators.SquareTone(rate, 880)
		if err != nil {
			return nil, err
		}
		return volume(beep.Take(rate.N(80*time.Millisecond), tone), 0.25), nil
	case SoundSplat:
		return volume(beep.Take(rate.N(60*time.Millisecond), &noise{}), 0.3), nil
	case SoundInvaderKilled:
		tone, err := generators.SineTone(rate, 220)
		if err != nil {
			return nil, err
		}
		d := rate.N(150 * time.Millisecond)
		return volume(beep.Mix(beep.Take(d, tone), volume(beep.Take(d, &noise{}), 0.5)), 0.4), nil
	case SoundPlayerKilled:
		tone, err := generators.SawtoothTone(rate, 110)
		if err != nil {
			return nil, err
		}
		d := rate.N(500 * time.Millisecond)
		return volume(beep.Mix(beep.Take(d, tone), beep.Take(d, &noise{})), 0.35), nil
	case SoundMysteryShip:
		tone, err := generators.TriangleTone(rate, 440)
		if err != nil {
			return nil, err
		}
		return volume(beep.Take(rate.N(200*time.Millisecond), tone), 0.3), nil
	}
	return nil, fmt.Errorf("unknown sound %d", s)
}

// volume 线性音量转换为 effects.Volume，0 为静音
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// noise 白噪声
type noise struct{}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// renderPCM 把有限长度的流渲染为 16 位小端立体声
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
