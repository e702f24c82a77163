package storage

import "testing"

func TestSaveAndListMatches(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{GameID: "fighter", Winner: "p2", P1Health: 40, P2Health: 60, DurationSecs: 60, Ticks: 3600},
		{GameID: "fighter", Winner: "p1", P1Health: 70, P2Health: 0, DurationSecs: 22, Ticks: 1320, VsCPU: true},
		{GameID: "fighter", Winner: "draw", P1Health: 50, P2Health: 50, DurationSecs: 60, Ticks: 3600},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	got, err := store.RecentMatches("fighter", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, expected 2", len(got))
	}
	if got[0].Winner != "draw" || got[1].Winner != "p1" {
		t.Errorf("order = %s, %s; expected newest first", got[0].Winner, got[1].Winner)
	}
	if !got[1].VsCPU || got[1].P1Health != 70 || got[1].Ticks != 1320 {
		t.Errorf("fields not preserved: %+v", got[1])
	}

	sum, err := store.MatchStats("fighter")
	if err != nil {
		t.Fatalf("MatchStats() failed: %v", err)
	}
	want := MatchSummary{Total: 3, P1Wins: 1, P2Wins: 1, Draws: 1}
	if sum != want {
		t.Errorf("MatchStats() = %+v, expected %+v", sum, want)
	}
}

func TestSaveMatchRejectsUnknownWinner(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(MatchRecord{GameID: "fighter", Winner: "none"}); err == nil {
		t.Error("undecided match should not be stored")
	}
}

func TestMatchStatsEmpty(t *testing.T) {
	store := openTestStore(t)
	sum, err := store.MatchStats("fighter")
	if err != nil {
		t.Fatal(err)
	}
	if sum != (MatchSummary{}) {
		t.Errorf("empty stats = %+v", sum)
	}
}
