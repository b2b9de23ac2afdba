package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viscontie/junk-mail-service/internal/model"
)

func TestAddInitializesAndIncrements(t *testing.T) {
	c := New()
	c = c.Add("Lubricant")
	assert.Equal(t, 1, c.Quantity("Lubricant"))
	c = c.Add("Lubricant")
	assert.Equal(t, 2, c.Quantity("Lubricant"))
}

func TestMutationsReturnFreshSnapshots(t *testing.T) {
	c1 := New().Add("Lubricant")
	c2 := c1.Add("Plan B")
	assert.Equal(t, 1, c1.Quantity("Lubricant"))
	assert.Zero(t, c1.Quantity("Plan B"), "older snapshot must not see later writes")
	assert.Equal(t, 1, c2.Quantity("Plan B"))

	c3 := c2.SetQuantity("Lubricant", 5)
	assert.Equal(t, 1, c2.Quantity("Lubricant"))
	assert.Equal(t, 5, c3.Quantity("Lubricant"))
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	c := New().Add("Lubricant")
	c = c.SetQuantity("Lubricant", 0)
	_, present := c["Lubricant"]
	assert.False(t, present, "zero quantity must delete the entry, not store zero")

	c = New().Add("Plan B").SetQuantity("Plan B", -3)
	_, present = c["Plan B"]
	assert.False(t, present)
}

func TestNoSequenceProducesNonPositiveEntry(t *testing.T) {
	c := New()
	ops := []func(Cart) Cart{
		func(c Cart) Cart { return c.Add("a") },
		func(c Cart) Cart { return c.SetQuantity("a", 0) },
		func(c Cart) Cart { return c.Add("b") },
		func(c Cart) Cart { return c.SetQuantity("b", -1) },
		func(c Cart) Cart { return c.Remove("a") },
		func(c Cart) Cart { return c.Add("a") },
		func(c Cart) Cart { return c.SetQuantity("a", 4) },
	}
	for _, op := range ops {
		c = op(c)
		for name, qty := range c {
			assert.Positivef(t, qty, "entry %q has non-positive quantity", name)
		}
	}
}

func TestRemoveAbsentIsNoError(t *testing.T) {
	c := New().Remove("nothing here")
	assert.True(t, c.Empty())
}

func TestReplaceAllThenClear(t *testing.T) {
	c := New().Add("Lubricant").Add("Plan B")
	c = c.ReplaceAll(Cart{"Super Tampon": 2})
	assert.Equal(t, Cart{"Super Tampon": 2}, c)
	assert.True(t, c.Clear().Empty())
}

func TestReplaceAllDoesNotAliasArgument(t *testing.T) {
	src := Cart{"Lubricant": 1}
	c := New().ReplaceAll(src)
	src["Lubricant"] = 99
	assert.Equal(t, 1, c.Quantity("Lubricant"))
}

func TestItemsRoundTripThroughOrder(t *testing.T) {
	c := Cart{"Lubed Reg Condom": 2, "Lubricant": 1}
	items := c.Items()
	require.Len(t, items, 2)

	back := FromOrder(model.Order{Items: items})
	assert.Equal(t, c, back)
}

func TestFromOrderSkipsNonPositiveQuantities(t *testing.T) {
	c := FromOrder(model.Order{Items: []model.OrderItem{
		{Name: "Lubricant", Qty: 2},
		{Name: "Plan B", Qty: 0},
	}})
	assert.Equal(t, Cart{"Lubricant": 2}, c)
}
