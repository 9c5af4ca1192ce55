package system

import (
	"encoding/json"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/engine/mocks"
	"github.com/lixenwraith/vi-arena/network"
	"github.com/lixenwraith/vi-arena/status"
)

func TestSpectatorPublishesEveryN(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockSnapshotPublisher(ctrl)

	env := newTestEnv()
	env.world.Resources.Spectator = &engine.SpectatorResource{Publisher: pub}
	sys := NewSpectatorSystem(env.world, env.space, 4)

	var frames []network.Snapshot
	pub.EXPECT().ClientCount().Return(2).Times(8)
	pub.EXPECT().Broadcast(gomock.Any()).DoAndReturn(func(data []byte) int {
		var s network.Snapshot
		if err := json.Unmarshal(data, &s); err != nil {
			t.Fatalf("snapshot is not json: %v", err)
		}
		frames = append(frames, s)
		return 2
	}).Times(2)

	for range 8 {
		env.step(sys)
	}

	if len(frames) != 2 || frames[0].Frame != 4 || frames[1].Frame != 8 {
		t.Fatalf("published frames = %+v", frames)
	}
	snap := frames[0]
	if snap.MatchID != env.world.Resources.Game.MatchID.String() {
		t.Errorf("match id = %q", snap.MatchID)
	}
	if len(snap.Entities) != 1 || snap.Entities[0].Kind != network.KindPlayer || snap.Entities[0].Health != 100 {
		t.Errorf("entities = %+v", snap.Entities)
	}
	if got := env.world.Resources.Status.Ints.Get(status.KeySpectators).Load(); got != 2 {
		t.Errorf("spectator gauge = %d, want 2", got)
	}
}

func TestSpectatorSkipsWithoutClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockSnapshotPublisher(ctrl)

	env := newTestEnv()
	env.world.Resources.Spectator = &engine.SpectatorResource{Publisher: pub}
	sys := NewSpectatorSystem(env.world, env.space, 1)

	pub.EXPECT().ClientCount().Return(0).Times(3)
	pub.EXPECT().Broadcast(gomock.Any()).Times(0)

	for range 3 {
		env.step(sys)
	}
}
