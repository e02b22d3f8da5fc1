package spell

import "testing"

func TestCacheDisabledByDefaultOrder(t *testing.T) {
	c := newCache(0)
	c.store("koira", Ok)
	if _, ok := c.lookup("koira"); ok {
		t.Fatalf("expected order-0 cache to never hit")
	}
}

func TestCacheStoreAndLookup(t *testing.T) {
	c := newCache(6)
	c.store("koira", CapitalizeFirst)
	got, ok := c.lookup("koira")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got != CapitalizeFirst {
		t.Errorf("got %v, want CapitalizeFirst", got)
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	c := newCache(6)
	c.store("kissa", Failed)
	c.store("kissa", CapitalizationError)
	if _, ok := c.lookup("kissa"); ok {
		t.Fatalf("expected failures and capitalization errors not to be cached")
	}
}

func TestCacheIgnoresWordsOverMaxLen(t *testing.T) {
	c := newCache(6)
	long := "abcdefghijklmnop"
	c.store(long, Ok)
	if _, ok := c.lookup(long); ok {
		t.Fatalf("expected words over maxCachedLen not to be cached")
	}
}

func TestCacheCollisionIsAMiss(t *testing.T) {
	c := newCache(1) // 2 slots per length: heavy collision pressure
	c.store("aa", Ok)
	c.store("bb", CapitalizeFirst)
	// One of the two may have evicted the other; either way a lookup must
	// never return a result for the wrong word.
	if got, ok := c.lookup("aa"); ok && got != Ok {
		t.Errorf("aa: got %v, want Ok or miss", got)
	}
	if got, ok := c.lookup("bb"); ok && got != CapitalizeFirst {
		t.Errorf("bb: got %v, want CapitalizeFirst or miss", got)
	}
}
