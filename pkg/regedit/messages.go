package regedit

// Human-readable outcome messages. The wording follows the result-code
// table of the original Ansible regedit module so existing playbook
// assertions keep matching.
const (
	msgHKeyAdded         = "HKEY successfully added."
	msgHKeyAlreadyExists = "HKEY already exists."
	msgKVAdded           = "HKEY kv-pair successfully added."
	msgKVAlreadyExists   = "HKEY kv-pair already exists."

	msgHKeyExists    = "HKEY exists."
	msgHKeyNotExists = "HKEY, as queried, NOT found."
	msgKeyExists     = "The key under HKEY exists."
	msgKVConfirmed   = "HKEY kv-pair, as queried, exists."
	msgValueMismatch = "HKEY key has a different value than queried."
	msgKVNotFound    = "HKEY kv-pair, as queried, was NOT found."
	msgKeyNotFound   = "The key under HKEY was NOT found."

	msgHKeyRemoved      = "HKEY successfully deleted (including any existing kv-pairs!)"
	msgHKeyNotRemoved   = "HKEY, as queried, was NOT found in the registry."
	msgKeyRemoved       = "The key under HKEY was successfully deleted (value not checked)."
	msgKVRemoved        = "The key-value under HKEY was successfully deleted (value checked)."
	msgDelGuardMismatch = "The key under HKEY has a different value than queried; not deleted."

	msgHKeyRenamed      = "The HKEY entry was renamed."
	msgHKeyNotUpdated   = "The HKEY entry was not updated (old/new HKEY same)."
	msgHKeyNotFound     = "The HKEY was NOT found."
	msgKeyRenamed       = "The key under HKEY was renamed."
	msgKeyNotUpdated    = "The key under HKEY was not updated (old/new key same)."
	msgValUpdated       = "The value belonging to key under HKEY was updated."
	msgValNotUpdated    = "The value belonging to key under HKEY was not updated (old/new val same)."
	msgValUpserted      = "The key under HKEY was created with the new value."
	msgUpdGuardMismatch = "The key under HKEY has a different value than expected; not updated."
)
