package scenario

import (
	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

var builtins = []*Roster{
	{
		id:          "doubles",
		title:       "Doubles",
		description: "Two against two, every slot filled",
		ally: []member{
			{species: "Pikachu", moves: moves("thunderbolt", "fake-out", "protect", "helping-hand")},
			{species: "Charizard", moves: moves("flamethrower", "tailwind", "dragon-pulse", "brave-bird")},
		},
		enemy: []member{
			{species: "Gyarados", moves: moves("surf", "ice-beam", "haze", "protect")},
			{species: "Garchomp", moves: moves("earthquake", "outrage", "rock-slide", "stealth-rock")},
		},
	},
	{
		id:          "outnumbered",
		title:       "Outnumbered",
		description: "One ally left against a full enemy side",
		ally: []member{
			{species: "Lucario", moves: moves("close-combat", "iron-head", "dark-pulse", "acupressure")},
		},
		enemy: []member{
			{species: "Tyranitar", moves: moves("rock-slide", "dark-pulse", "earthquake", "protect")},
			{species: "Dragonite", moves: moves("outrage", "ice-beam", "tailwind", "protect")},
		},
	},
	{
		id:          "duel",
		title:       "Duel",
		description: "Singles on the left column",
		ally: []member{
			{species: "Blastoise", moves: moves("surf", "ice-beam", "water-gun", "protect")},
		},
		enemy: []member{
			{species: "Venusaur", moves: moves("razor-leaf", "sludge-bomb", "protect", "tackle")},
		},
	},
	{
		id:          "aftermath",
		title:       "Aftermath",
		description: "Fainted combatants on both sides",
		ally: []member{
			{species: "Snorlax", moves: moves("tackle", "earthquake", "helping-hand", "protect")},
			{species: "Ribombee", fainted: true, moves: moves("moonblast", "pollen-puff")},
		},
		enemy: []member{
			{species: "Gengar", fainted: true, moves: moves("shadow-ball", "sludge-bomb")},
			{species: "Metagross", moves: moves("iron-head", "psychic", "earthquake", "protect")},
		},
	},
}

func init() {
	for _, r := range builtins {
		registry.Register(r.id, func() registry.Scenario { return r })
	}
}

func moves(ids ...string) []battle.MoveID {
	out := make([]battle.MoveID, len(ids))
	for i, id := range ids {
		out[i] = battle.MoveID(id)
	}
	return out
}
