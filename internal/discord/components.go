package discord

// RegisterInteractions wires the buttons, select menus and modals that the
// commands attach to their messages.
func RegisterInteractions(r *CommandRegistry) {
	r.RegisterComponent(idRaidSignup, handleRaidSignup)
	r.RegisterComponent(idRaidLeave, handleRaidLeave)
	r.RegisterComponent(idRaidRoleSelect, handleRaidRoleSelect)
	r.RegisterComponent(idGSSelect, handleGSSelect)
	r.RegisterComponent(idCharacterDelete, handleCharacterDeleteSelect)
	r.RegisterComponent(idDeleteConfirm, handleCharacterDeleteConfirm)
	r.RegisterComponent(idDeleteCancel, handleCharacterDeleteCancel)

	r.RegisterModal(idRaidCreateModal, handleRaidCreateModal)
}
