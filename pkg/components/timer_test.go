package components

import "testing"

func TestTimerComponent_OneShot(t *testing.T) {
	timer := &TimerComponent{Name: "respawn", TargetTime: 1.0}

	if timer.Tick(0.6) {
		t.Fatal("timer should not fire before target time")
	}
	if !timer.Tick(0.6) {
		t.Fatal("timer should fire once target time is reached")
	}
	if !timer.IsReady {
		t.Error("one-shot timer should stay ready")
	}
	if timer.Tick(5) {
		t.Error("one-shot timer should not fire twice")
	}

	timer.Reset()
	if timer.IsReady || timer.CurrentTime != 0 {
		t.Errorf("Reset() left timer in %+v", timer)
	}
}

func TestTimerComponent_Repeat(t *testing.T) {
	timer := &TimerComponent{Name: "missile_attack", TargetTime: 1.0, Repeat: true}

	fired := 0
	for i := 0; i < 10; i++ {
		if timer.Tick(0.25) {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("repeat timer fired %d times in 2.5s, want 2", fired)
	}
	if timer.CurrentTime != 0.5 {
		t.Errorf("CurrentTime = %v, want 0.5 (overflow carried)", timer.CurrentTime)
	}
}
