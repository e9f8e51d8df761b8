// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-queue/session"
	"github.com/danielhkuo/quickly-queue/testutil"
)

// asUser attaches an authenticated identity the way the auth middleware does
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(session.WithUserID(r.Context(), userID))
}

func TestCreateQueue(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQueueHandler(conn, cfg)

	alice := testutil.CreateTestUser(t, conn, "alice", "alice@x.com", "pw123")

	t.Run("creates queue for the caller", func(t *testing.T) {
		form := url.Values{"name": {"Abyss"}, "priority": {"1"}}
		w := httptest.NewRecorder()
		handler.CreateQueue(w, asUser(testutil.MakeFormRequest("POST", "/create_queue", form), alice))

		testutil.AssertRedirect(t, w, "/dashboard")

		var creatorID string
		var priority int
		err := conn.QueryRow("SELECT creator_id, priority FROM queue WHERE name = $1", "Abyss").Scan(&creatorID, &priority)
		if err != nil {
			t.Fatalf("queue not created: %v", err)
		}
		if creatorID != alice || priority != 1 {
			t.Errorf("queue = (creator %q, priority %d), want (%q, 1)", creatorID, priority, alice)
		}
	})

	t.Run("non-numeric priority rejected", func(t *testing.T) {
		form := url.Values{"name": {"Bad"}, "priority": {"high"}}
		w := httptest.NewRecorder()
		handler.CreateQueue(w, asUser(testutil.MakeFormRequest("POST", "/create_queue", form), alice))

		testutil.AssertRedirect(t, w, "/create_queue")

		var count int
		conn.QueryRow("SELECT COUNT(*) FROM queue WHERE name = $1", "Bad").Scan(&count)
		if count != 0 {
			t.Error("queue created despite invalid priority")
		}
	})

	t.Run("missing name rejected", func(t *testing.T) {
		form := url.Values{"priority": {"1"}}
		w := httptest.NewRecorder()
		handler.CreateQueue(w, asUser(testutil.MakeFormRequest("POST", "/create_queue", form), alice))

		testutil.AssertRedirect(t, w, "/create_queue")
	})
}

func TestDashboardOrdering(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	alice := testutil.CreateTestUser(t, conn, "alice", "alice@x.com", "pw123")
	bob := testutil.CreateTestUser(t, conn, "bob", "bob@x.com", "pw456")

	// Insert out of priority order; bob's queue must never appear for alice
	testutil.CreateTestQueue(t, conn, alice, "Later", 5)
	testutil.CreateTestQueue(t, conn, alice, "First", 1)
	testutil.CreateTestQueue(t, conn, alice, "Middle", 3)
	testutil.CreateTestQueue(t, conn, bob, "Theatre", 0)

	queues, err := listQueues(conn, alice)
	if err != nil {
		t.Fatalf("listQueues() error = %v", err)
	}

	if len(queues) != 3 {
		t.Fatalf("listQueues() returned %d queues, want 3", len(queues))
	}
	for i := 1; i < len(queues); i++ {
		if queues[i-1].Priority > queues[i].Priority {
			t.Errorf("queues out of order: %d before %d", queues[i-1].Priority, queues[i].Priority)
		}
	}
	for _, q := range queues {
		if q.CreatorID != alice {
			t.Errorf("foreign queue %q in alice's list", q.Name)
		}
	}

	handler := NewQueueHandler(conn, cfg)
	w := httptest.NewRecorder()
	handler.Dashboard(w, asUser(testutil.MakeRequest("GET", "/dashboard", nil), alice))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "First") || strings.Contains(body, "Theatre") {
		t.Error("dashboard does not show exactly the caller's queues")
	}
}

func TestUpdateQueue(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQueueHandler(conn, cfg)

	alice := testutil.CreateTestUser(t, conn, "alice", "alice@x.com", "pw123")
	bob := testutil.CreateTestUser(t, conn, "bob", "bob@x.com", "pw456")
	queueID := testutil.CreateTestQueue(t, conn, alice, "Abyss", 1)

	t.Run("owner can update", func(t *testing.T) {
		form := url.Values{"name": {"Abyss II"}, "priority": {"2"}}
		req := asUser(testutil.MakeFormRequest("POST", "/manage_queue/"+queueID, form), alice)
		req.SetPathValue("id", queueID)
		w := httptest.NewRecorder()
		handler.UpdateQueue(w, req)

		testutil.AssertRedirect(t, w, "/manage_queue/"+queueID)

		var name string
		var priority int
		conn.QueryRow("SELECT name, priority FROM queue WHERE id = $1", queueID).Scan(&name, &priority)
		if name != "Abyss II" || priority != 2 {
			t.Errorf("queue = (%q, %d), want (Abyss II, 2)", name, priority)
		}
	})

	t.Run("non-owner is refused and queue unchanged", func(t *testing.T) {
		form := url.Values{"name": {"Hijacked"}, "priority": {"9"}}
		req := asUser(testutil.MakeFormRequest("POST", "/manage_queue/"+queueID, form), bob)
		req.SetPathValue("id", queueID)
		w := httptest.NewRecorder()
		handler.UpdateQueue(w, req)

		testutil.AssertRedirect(t, w, "/dashboard")

		var name string
		conn.QueryRow("SELECT name FROM queue WHERE id = $1", queueID).Scan(&name)
		if name != "Abyss II" {
			t.Errorf("queue name = %q after forbidden update", name)
		}
	})

	t.Run("unknown queue", func(t *testing.T) {
		form := url.Values{"name": {"X"}, "priority": {"0"}}
		req := asUser(testutil.MakeFormRequest("POST", "/manage_queue/missing", form), alice)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		handler.UpdateQueue(w, req)

		testutil.AssertRedirect(t, w, "/dashboard")
	})
}

func TestDeleteQueue(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQueueHandler(conn, cfg)

	alice := testutil.CreateTestUser(t, conn, "alice", "alice@x.com", "pw123")
	bob := testutil.CreateTestUser(t, conn, "bob", "bob@x.com", "pw456")

	t.Run("delete cascades to entries", func(t *testing.T) {
		queueID := testutil.CreateTestQueue(t, conn, alice, "Abyss", 1)
		testutil.AddTestParticipant(t, conn, queueID, "p1", "Boss")
		testutil.AddTestParticipant(t, conn, queueID, "p2", "")

		req := asUser(testutil.MakeRequest("GET", "/delete_queue/"+queueID, nil), alice)
		req.SetPathValue("id", queueID)
		w := httptest.NewRecorder()
		handler.DeleteQueue(w, req)

		testutil.AssertRedirect(t, w, "/dashboard")

		var queues, orphans int
		conn.QueryRow("SELECT COUNT(*) FROM queue WHERE id = $1", queueID).Scan(&queues)
		conn.QueryRow("SELECT COUNT(*) FROM queue_entry WHERE queue_id = $1", queueID).Scan(&orphans)
		if queues != 0 {
			t.Error("queue still present after delete")
		}
		if orphans != 0 {
			t.Errorf("%d orphan entries survived the delete", orphans)
		}
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		queueID := testutil.CreateTestQueue(t, conn, alice, "Keep", 2)

		req := asUser(testutil.MakeRequest("GET", "/delete_queue/"+queueID, nil), bob)
		req.SetPathValue("id", queueID)
		w := httptest.NewRecorder()
		handler.DeleteQueue(w, req)

		testutil.AssertRedirect(t, w, "/dashboard")

		var count int
		conn.QueryRow("SELECT COUNT(*) FROM queue WHERE id = $1", queueID).Scan(&count)
		if count != 1 {
			t.Error("queue deleted by a non-owner")
		}
	})

	t.Run("unknown queue", func(t *testing.T) {
		req := asUser(testutil.MakeRequest("GET", "/delete_queue/missing", nil), alice)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		handler.DeleteQueue(w, req)

		testutil.AssertRedirect(t, w, "/dashboard")
	})
}

func TestManageAllQueues(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQueueHandler(conn, cfg)

	alice := testutil.CreateTestUser(t, conn, "alice", "alice@x.com", "pw123")
	queueID := testutil.CreateTestQueue(t, conn, alice, "Abyss", 1)
	testutil.AddTestParticipant(t, conn, queueID, "p1", "Boss")
	testutil.AddTestContentOption(t, conn, "Boss")

	w := httptest.NewRecorder()
	handler.ManageAllQueues(w, asUser(testutil.MakeRequest("GET", "/manage_all_queues", nil), alice))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	for _, want := range []string{"Abyss", "p1", "Boss"} {
		if !strings.Contains(body, want) {
			t.Errorf("manage_all_queues page missing %q", want)
		}
	}
}
