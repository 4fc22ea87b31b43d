package global

import "github.com/charmbracelet/bubbles/key"

// MenuKeyMap covers the keys every menu shares
type MenuKeyMap struct {
	Up, Down, Select, Next, Prev, Back, Quit key.Binding
}

func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Select, k.Back, k.Quit}}
}

// PartyKeyMap is the party screen's actions on the selected member
type PartyKeyMap struct {
	Up, Down, UseItem, Evolve, Deposit, Save, Back key.Binding
}

func (k PartyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UseItem, k.Evolve, k.Deposit, k.Save, k.Back}
}

func (k PartyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back}, {k.UseItem, k.Evolve, k.Deposit, k.Save}}
}

// PCKeyMap is the box grid's cursor, box switching and slot actions
type PCKeyMap struct {
	Left, Right, Up, Down, NextBox, PrevBox, Withdraw, Find, SetCurrent, Back key.Binding
}

func (k PCKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBox, k.Withdraw, k.Find, k.SetCurrent, k.Back}
}

func (k PCKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.NextBox, k.PrevBox, k.Back},
		{k.Withdraw, k.Find, k.SetCurrent},
	}
}

var (
	MenuKeys = MenuKeyMap{
		Up:     MoveUpKey,
		Down:   MoveDownKey,
		Select: SelectKey,
		Next:   DownTabKey,
		Prev:   UpTabKey,
		Back:   BackKey,
		Quit:   QuitKey,
	}

	PartyKeys = PartyKeyMap{
		Up:      MoveUpKey,
		Down:    MoveDownKey,
		UseItem: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "use item")),
		Evolve:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "evolve")),
		Deposit: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "send to PC")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save party")),
		Back:    BackKey,
	}

	PCKeys = PCKeyMap{
		Left:       MoveLeftKey,
		Right:      MoveRightKey,
		Up:         MoveUpKey,
		Down:       MoveDownKey,
		NextBox:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next box")),
		PrevBox:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous box")),
		Withdraw:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "withdraw")),
		Find:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "find species")),
		SetCurrent: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "set current box")),
		Back:       BackKey,
	}
)
