package table

// Controller keeps the current state of one view for a single-writer
// consumer such as the terminal console. Each call replaces the state and
// the derived output together.
type Controller[R any] struct {
	view    *View[R]
	current Result[R]
}

func NewController[R any](view *View[R], s State) *Controller[R] {
	return &Controller[R]{view: view, current: view.Render(s)}
}

func (c *Controller[R]) Result() Result[R] { return c.current }
func (c *Controller[R]) State() State      { return c.current.State }
func (c *Controller[R]) View() *View[R]    { return c.view }

func (c *Controller[R]) SetQuery(q string) Result[R] {
	return c.commit(c.view.SetQuery(c.current.State, q))
}

func (c *Controller[R]) ToggleSort(field string) Result[R] {
	return c.commit(c.view.ToggleSort(c.current.State, field))
}

func (c *Controller[R]) SetPageSize(n int) Result[R] {
	return c.commit(c.view.SetPageSize(c.current.State, n))
}

func (c *Controller[R]) GoToPage(n int) Result[R] {
	return c.commit(c.view.GoToPage(c.current.State, n))
}

func (c *Controller[R]) JumpToPage(input string) Result[R] {
	return c.commit(c.view.JumpToPage(c.current.State, input))
}

func (c *Controller[R]) FirstPage() Result[R] { return c.commit(c.view.FirstPage(c.current.State)) }
func (c *Controller[R]) PrevPage() Result[R]  { return c.commit(c.view.PrevPage(c.current.State)) }
func (c *Controller[R]) NextPage() Result[R]  { return c.commit(c.view.NextPage(c.current.State)) }
func (c *Controller[R]) LastPage() Result[R]  { return c.commit(c.view.LastPage(c.current.State)) }

// Refresh recomputes the output against a new record store, keeping the
// interaction state. The page is clamped against the new store.
func (c *Controller[R]) Refresh(view *View[R]) Result[R] {
	c.view = view
	return c.commit(view.Render(c.current.State))
}

func (c *Controller[R]) commit(r Result[R]) Result[R] {
	c.current = r
	return r
}
